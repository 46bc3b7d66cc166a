package models

import "time"

// Taco is a user-composed item: a named combination of catalog ingredients.
type Taco struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Ingredients []Ingredient `gorm:"many2many:taco_ingredients" json:"ingredients"`
	CreatedAt   time.Time    `json:"created_at"`
}
