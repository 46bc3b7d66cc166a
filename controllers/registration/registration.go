package registrationControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/auth"
	"github.com/thejos/taco-cloud-v2/models"
	"github.com/thejos/taco-cloud-v2/validation"
)

// GET /register
func ShowRegistrationForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": validation.RegistrationForm{}})
	}
}

// POST /register
func ProcessRegistration(db *gorm.DB, hasher auth.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validation.RegistrationForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := validation.ValidateRegistration(&form); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"form": form, "errors": errs})
			return
		}

		hash, err := hasher.Hash(form.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}

		user := models.User{
			Username:     form.Username,
			PasswordHash: hash,
			FullName:     form.FullName,
			Street:       form.Street,
			City:         form.City,
			State:        form.State,
			Zip:          form.Zip,
			Phone:        form.Phone,
		}

		if err := db.Create(&user).Error; err != nil {
			if isDuplicateUsername(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username is already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		log.Printf("User %q registered", user.Username)
		c.JSON(http.StatusCreated, user)
	}
}

func isDuplicateUsername(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Driver-specific constraint errors that GORM does not translate.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
