package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	designControllers "github.com/thejos/taco-cloud-v2/controllers/design"
	"github.com/thejos/taco-cloud-v2/middleware"
	"github.com/thejos/taco-cloud-v2/session"
)

// SetupDesignRoutes registers the "/design" endpoints. Requires JWT middleware.
func SetupDesignRoutes(r *gin.Engine, db *gorm.DB, store session.Store) {
	design := r.Group("/design")
	design.Use(middleware.ValidateToken)
	design.Use(session.Middleware())
	{
		design.GET("/", designControllers.ShowDesignForm(db))      // GET /design
		design.POST("/", designControllers.ProcessTaco(db, store)) // POST /design
	}
}
