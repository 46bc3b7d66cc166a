package designControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/thejos/taco-cloud-v2/models"
	"github.com/thejos/taco-cloud-v2/session"
	"github.com/thejos/taco-cloud-v2/validation"
)

type TacoInput struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// ingredientsByType groups the catalog for the design form. The catalog is
// re-queried on every request; nothing is cached between requests.
func ingredientsByType(db *gorm.DB) (gin.H, error) {
	var ingredients []models.Ingredient
	if err := db.Find(&ingredients).Error; err != nil {
		return nil, err
	}

	grouped := gin.H{}
	for _, t := range models.IngredientTypes() {
		grouped[string(t)] = models.FilterIngredientsByType(ingredients, t)
	}
	return grouped, nil
}

// GET /design
func ShowDesignForm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		grouped, err := ingredientsByType(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
			return
		}

		grouped["taco"] = TacoInput{}
		c.JSON(http.StatusOK, grouped)
	}
}

// POST /design
func ProcessTaco(db *gorm.DB, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TacoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Unknown ingredient ids are absent references, not errors; they are
		// simply skipped.
		var ingredients []models.Ingredient
		for _, id := range input.Ingredients {
			var ingredient models.Ingredient
			if err := db.First(&ingredient, "id = ?", id).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
				return
			}
			ingredients = append(ingredients, ingredient)
		}

		if errs := validation.ValidateTaco(input.Name, ingredients); len(errs) > 0 {
			grouped, err := ingredientsByType(db)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
				return
			}
			grouped["taco"] = input
			grouped["errors"] = errs
			c.JSON(http.StatusUnprocessableEntity, grouped)
			return
		}

		taco := models.Taco{
			Name:        input.Name,
			Ingredients: ingredients,
			CreatedAt:   time.Now(),
		}
		// Ingredients already exist; create the taco and the join rows only.
		if err := db.Omit("Ingredients.*").Create(&taco).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save taco"})
			return
		}

		order, ok := session.CurrentOrder(store, c)
		if !ok {
			order = &models.TacoOrder{}
		}
		order.AddTaco(taco)
		session.SaveOrder(store, c, order)

		log.Printf("Taco %q added to order (%d tacos so far)", taco.Name, len(order.Tacos))
		c.Redirect(http.StatusSeeOther, "/orders/current")
	}
}
