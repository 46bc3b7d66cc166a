package models

import "time"

// TacoOrder accumulates tacos plus delivery and payment details. While the
// customer is still designing, the order lives in their session; once placed
// it is persisted and the session copy is discarded.
type TacoOrder struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderRef       string    `gorm:"uniqueIndex" json:"order_ref,omitempty"`
	DeliveryName   string    `json:"delivery_name"`
	DeliveryStreet string    `json:"delivery_street"`
	DeliveryCity   string    `json:"delivery_city"`
	DeliveryState  string    `json:"delivery_state"`
	DeliveryZip    string    `json:"delivery_zip"`
	CCNumber       string    `json:"cc_number"`
	CCExpiration   string    `json:"cc_expiration"`
	CCCVV          string    `json:"cc_cvv"`
	Tacos          []Taco    `gorm:"many2many:order_tacos" json:"tacos"`
	PlacedAt       time.Time `json:"placed_at,omitempty"`
	UserID         *uint     `json:"user_id,omitempty"`
	User           *User     `gorm:"foreignKey:UserID" json:"-"`
}

// AddTaco appends a taco to the order, preserving append order.
func (o *TacoOrder) AddTaco(taco Taco) {
	o.Tacos = append(o.Tacos, taco)
}

// PrefillDelivery copies profile fields into delivery fields that are still
// blank. Values the customer already typed are never overwritten, so calling
// it again is a no-op once the fields are set.
func (o *TacoOrder) PrefillDelivery(user *User) {
	if user == nil {
		return
	}
	if o.DeliveryName == "" {
		o.DeliveryName = user.FullName
	}
	if o.DeliveryStreet == "" {
		o.DeliveryStreet = user.Street
	}
	if o.DeliveryCity == "" {
		o.DeliveryCity = user.City
	}
	if o.DeliveryState == "" {
		o.DeliveryState = user.State
	}
	if o.DeliveryZip == "" {
		o.DeliveryZip = user.Zip
	}
}
