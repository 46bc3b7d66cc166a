package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/thejos/taco-cloud-v2/controllers/order"
	"github.com/thejos/taco-cloud-v2/middleware"
	"github.com/thejos/taco-cloud-v2/session"
)

// SetupOrderRoutes registers the "/orders" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, store session.Store) {
	requireTacos := os.Getenv("ORDER_REQUIRE_TACOS") == "true"

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	orders.Use(session.Middleware())
	{
		// Show the current in-progress order, prefilled from the profile
		orders.GET("/current", orderControllers.OrderForm(db, store))

		// A plain GET on /orders goes back to the design page
		orders.GET("/", orderControllers.RedirectToDesign())

		// Finalize the session order
		orders.POST("/", orderControllers.ProcessOrder(db, store, requireTacos))
	}

	admin := r.Group("/orders")
	admin.Use(middleware.ValidateAPIKey)
	{
		// Fetch all placed orders (admin)
		admin.GET("/all", orderControllers.GetAllOrders(db))

		// Download placed orders as Excel (admin)
		admin.GET("/export", orderControllers.ExportOrdersToExcel(db))
	}

	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
