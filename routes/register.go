package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/auth"
	registrationControllers "github.com/thejos/taco-cloud-v2/controllers/registration"
)

// SetupRegistrationRoutes registers the "/register" endpoints.
func SetupRegistrationRoutes(r *gin.Engine, db *gorm.DB) {
	register := r.Group("/register")
	{
		register.GET("/", registrationControllers.ShowRegistrationForm())
		register.POST("/", registrationControllers.ProcessRegistration(db, auth.BcryptHasher{}))
	}
}
