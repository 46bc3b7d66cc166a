package errorpage

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageFor maps a failure status code to the page shown for it.
func PageFor(status int) string {
	switch status {
	case http.StatusInternalServerError:
		return "error_500"
	case http.StatusNotFound:
		return "error_404"
	case http.StatusUnauthorized:
		return "error_401"
	default:
		return "error"
	}
}

// Handler renders the error page for a status code.
func Handler(status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Printf("Error page %q served for status %d on %s", PageFor(status), status, c.Request.URL.Path)
		c.JSON(status, gin.H{"page": PageFor(status), "status": status})
	}
}
