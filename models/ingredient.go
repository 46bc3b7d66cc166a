package models

import "gorm.io/gorm"

type IngredientType string

const (
	IngredientTypeWrap    IngredientType = "wrap"
	IngredientTypeProtein IngredientType = "protein"
	IngredientTypeVeggies IngredientType = "veggies"
	IngredientTypeCheese  IngredientType = "cheese"
	IngredientTypeSauce   IngredientType = "sauce"
)

// IngredientTypes lists every type in menu order.
func IngredientTypes() []IngredientType {
	return []IngredientType{
		IngredientTypeWrap,
		IngredientTypeProtein,
		IngredientTypeVeggies,
		IngredientTypeCheese,
		IngredientTypeSauce,
	}
}

type Ingredient struct {
	ID   string         `gorm:"primaryKey" json:"id"`
	Name string         `gorm:"not null" json:"name"`
	Type IngredientType `gorm:"type:VARCHAR(20);not null" json:"type"`
}

// FilterIngredientsByType keeps the relative order of the full catalog slice.
func FilterIngredientsByType(ingredients []Ingredient, t IngredientType) []Ingredient {
	filtered := []Ingredient{}
	for _, ingredient := range ingredients {
		if ingredient.Type == t {
			filtered = append(filtered, ingredient)
		}
	}
	return filtered
}

// SeedIngredients inserts the base catalog. Existing rows are left untouched,
// so it is safe to call on every startup.
func SeedIngredients(db *gorm.DB) error {
	ingredients := []Ingredient{
		{ID: "FLTO", Name: "Flour Tortilla", Type: IngredientTypeWrap},
		{ID: "COTO", Name: "Corn Tortilla", Type: IngredientTypeWrap},
		{ID: "GRBF", Name: "Ground Beef", Type: IngredientTypeProtein},
		{ID: "CARN", Name: "Carnitas", Type: IngredientTypeProtein},
		{ID: "TMTO", Name: "Diced Tomatoes", Type: IngredientTypeVeggies},
		{ID: "LETC", Name: "Lettuce", Type: IngredientTypeVeggies},
		{ID: "CHED", Name: "Cheddar", Type: IngredientTypeCheese},
		{ID: "JACK", Name: "Monterrey Jack", Type: IngredientTypeCheese},
		{ID: "SLSA", Name: "Salsa", Type: IngredientTypeSauce},
		{ID: "SRCR", Name: "Sour Cream", Type: IngredientTypeSauce},
	}

	for _, ingredient := range ingredients {
		if err := db.Where(Ingredient{ID: ingredient.ID}).FirstOrCreate(&ingredient).Error; err != nil {
			return err
		}
	}
	return nil
}
