package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thejos/taco-cloud-v2/models"
)

const (
	// CookieName carries the browsing-session id between requests.
	CookieName = "taco_session"

	// OrderKey is the store key holding the in-progress order.
	OrderKey = "taco_order"

	contextKey = "session_id"

	cookieMaxAge = 24 * 60 * 60
)

// Middleware reads the session cookie, issuing a fresh id when the request
// carries none, and exposes the id in the gin context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(CookieName, sessionID, cookieMaxAge, "/", "", false, true)
		}
		c.Set(contextKey, sessionID)
		c.Next()
	}
}

// ID returns the session id placed in the context by Middleware.
func ID(c *gin.Context) string {
	id, _ := c.Get(contextKey)
	sessionID, _ := id.(string)
	return sessionID
}

// CurrentOrder fetches the session's in-progress order, if any.
func CurrentOrder(store Store, c *gin.Context) (*models.TacoOrder, bool) {
	value, ok := store.Get(ID(c), OrderKey)
	if !ok {
		return nil, false
	}
	order, ok := value.(*models.TacoOrder)
	return order, ok
}

// SaveOrder puts the in-progress order back into the session.
func SaveOrder(store Store, c *gin.Context, order *models.TacoOrder) {
	store.Set(ID(c), OrderKey, order)
}

// ClearOrder drops the in-progress order, so the next request starts fresh.
func ClearOrder(store Store, c *gin.Context) {
	store.Clear(ID(c), OrderKey)
}
