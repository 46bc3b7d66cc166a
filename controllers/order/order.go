package orderControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/models"
	"github.com/thejos/taco-cloud-v2/session"
	"github.com/thejos/taco-cloud-v2/validation"
)

// OrderInput carries the delivery and payment fields of the order form.
// Tacos are never bound from the request; they only enter the order through
// the design flow.
type OrderInput struct {
	DeliveryName   string `json:"delivery_name"`
	DeliveryStreet string `json:"delivery_street"`
	DeliveryCity   string `json:"delivery_city"`
	DeliveryState  string `json:"delivery_state"`
	DeliveryZip    string `json:"delivery_zip"`
	CCNumber       string `json:"cc_number"`
	CCExpiration   string `json:"cc_expiration"`
	CCCVV          string `json:"cc_cvv"`
}

func (in *OrderInput) apply(order *models.TacoOrder) {
	order.DeliveryName = in.DeliveryName
	order.DeliveryStreet = in.DeliveryStreet
	order.DeliveryCity = in.DeliveryCity
	order.DeliveryState = in.DeliveryState
	order.DeliveryZip = in.DeliveryZip
	order.CCNumber = in.CCNumber
	order.CCExpiration = in.CCExpiration
	order.CCCVV = in.CCCVV
}

func currentUser(db *gorm.DB, c *gin.Context) *models.User {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil
	}
	return &user
}

// GET /orders/current
//
// Returns the session's in-progress order, creating an empty one if the
// session has none, with blank delivery fields prefilled from the customer's
// profile.
func OrderForm(db *gorm.DB, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := session.CurrentOrder(store, c)
		if !ok {
			order = &models.TacoOrder{}
		}

		order.PrefillDelivery(currentUser(db, c))
		session.SaveOrder(store, c, order)

		c.JSON(http.StatusOK, order)
	}
}

// GET /orders
//
// Browsing to the order path without a form submission just sends the
// customer back to the design page.
func RedirectToDesign() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/design")
	}
}

// POST /orders
//
// Finalizes the session order: every validation rule is evaluated, and only
// a fully valid order is persisted. On success the session order is cleared,
// so a repeated submission finds no current order and persists nothing.
func ProcessOrder(db *gorm.DB, store session.Store, requireTacos bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := session.CurrentOrder(store, c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No current order"})
			return
		}

		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validate against a copy; a rejected submission must leave the
		// session order exactly as it was.
		candidate := *order
		input.apply(&candidate)

		if errs := validation.ValidateOrder(&candidate, requireTacos); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"order": candidate, "errors": errs})
			return
		}

		input.apply(order)
		order.PlacedAt = time.Now()
		order.OrderRef = time.Now().Format("20060102150405") + "-" + uuid.NewString()
		if user := currentUser(db, c); user != nil {
			order.UserID = &user.ID
		}

		// Tacos were persisted during design; create the order and join rows.
		if err := db.Omit("Tacos.*").Create(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
			return
		}

		session.ClearOrder(store, c)
		broadcastOrderPlaced(*order)

		log.Printf("Order %s placed with %d tacos", order.OrderRef, len(order.Tacos))
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /orders/all (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.TacoOrder
		if err := db.
			Preload("Tacos.Ingredients").
			Order("placed_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
