package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(auth.GormUserFinder(db), auth.BcryptHasher{}))
	}
}
