package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTacoPreservesAppendOrder(t *testing.T) {
	order := &TacoOrder{}

	for i := 1; i <= 5; i++ {
		order.AddTaco(Taco{Name: fmt.Sprintf("Taco %d", i)})
		require.Len(t, order.Tacos, i)
	}

	for i, taco := range order.Tacos {
		assert.Equal(t, fmt.Sprintf("Taco %d", i+1), taco.Name)
	}
}

func TestPrefillDeliveryFillsBlankFields(t *testing.T) {
	order := &TacoOrder{}
	user := &User{
		FullName: "Jane",
		Street:   "1 Main",
		City:     "Springfield",
		State:    "IL",
		Zip:      "60601",
	}

	order.PrefillDelivery(user)

	assert.Equal(t, "Jane", order.DeliveryName)
	assert.Equal(t, "1 Main", order.DeliveryStreet)
	assert.Equal(t, "Springfield", order.DeliveryCity)
	assert.Equal(t, "IL", order.DeliveryState)
	assert.Equal(t, "60601", order.DeliveryZip)
	assert.Empty(t, order.Tacos)
}

func TestPrefillDeliveryNeverOverwrites(t *testing.T) {
	order := &TacoOrder{DeliveryCity: "X"}
	user := &User{City: "Y", Zip: "60601"}

	order.PrefillDelivery(user)

	assert.Equal(t, "X", order.DeliveryCity)
	assert.Equal(t, "60601", order.DeliveryZip)
}

func TestPrefillDeliveryIdempotent(t *testing.T) {
	order := &TacoOrder{}
	user := &User{FullName: "Jane", City: "Springfield"}

	order.PrefillDelivery(user)
	before := *order

	order.PrefillDelivery(&User{FullName: "Other", City: "Elsewhere"})
	assert.Equal(t, before, *order)
}

func TestPrefillDeliveryNilUser(t *testing.T) {
	order := &TacoOrder{DeliveryCity: "X"}
	order.PrefillDelivery(nil)
	assert.Equal(t, "X", order.DeliveryCity)
}

func TestFilterIngredientsByType(t *testing.T) {
	catalog := []Ingredient{
		{ID: "FLTO", Type: IngredientTypeWrap},
		{ID: "GRBF", Type: IngredientTypeProtein},
		{ID: "COTO", Type: IngredientTypeWrap},
		{ID: "SLSA", Type: IngredientTypeSauce},
	}

	wraps := FilterIngredientsByType(catalog, IngredientTypeWrap)
	require.Len(t, wraps, 2)
	// Relative order of the full catalog is preserved.
	assert.Equal(t, "FLTO", wraps[0].ID)
	assert.Equal(t, "COTO", wraps[1].ID)

	assert.Empty(t, FilterIngredientsByType(catalog, IngredientTypeCheese))
}
