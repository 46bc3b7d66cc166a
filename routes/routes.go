package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/controllers/errorpage"
	"github.com/thejos/taco-cloud-v2/session"
)

// SetupRoutes is the single entry-point that wires up the auth, registration,
// design and order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store session.Store) {
	// Public auth + registration routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupRegistrationRoutes(r, db)

	// Taco design routes (JWT-protected, session-scoped order)
	SetupDesignRoutes(r, db, store)

	// Order routes (JWT-protected; admin views API-key-protected)
	SetupOrderRoutes(r, db, store)

	// Unknown paths get the error page matching their status.
	r.NoRoute(errorpage.Handler(http.StatusNotFound))
}
