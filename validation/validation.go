package validation

import (
	"regexp"
	"strings"

	"github.com/thejos/taco-cloud-v2/models"
)

// FieldError reports one failed rule on one form field. A single submission
// can produce several of these; validators never stop at the first failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	ccExpirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	ccCVVPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// ValidateTaco checks a composed taco before it is accepted into an order.
func ValidateTaco(name string, ingredients []models.Ingredient) []FieldError {
	var errs []FieldError
	if len(name) < 5 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at least 5 characters long"})
	}
	if len(ingredients) == 0 {
		errs = append(errs, FieldError{Field: "ingredients", Message: "You must choose at least 1 ingredient"})
	}
	return errs
}

// ValidateOrder runs the full set of delivery and payment rules. Every rule
// is evaluated so the customer sees all problems at once.
func ValidateOrder(order *models.TacoOrder, requireTacos bool) []FieldError {
	var errs []FieldError

	required := []struct {
		field   string
		value   string
		message string
	}{
		{"delivery_name", order.DeliveryName, "Delivery name is required"},
		{"delivery_street", order.DeliveryStreet, "Street is required"},
		{"delivery_city", order.DeliveryCity, "City is required"},
		{"delivery_state", order.DeliveryState, "State is required"},
		{"delivery_zip", order.DeliveryZip, "Zip code is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: r.message})
		}
	}

	if !ValidCreditCardNumber(order.CCNumber) {
		errs = append(errs, FieldError{Field: "cc_number", Message: "Not a valid credit card number"})
	}
	if !ccExpirationPattern.MatchString(order.CCExpiration) {
		errs = append(errs, FieldError{Field: "cc_expiration", Message: "Must be formatted MM/YY"})
	}
	if !ccCVVPattern.MatchString(order.CCCVV) {
		errs = append(errs, FieldError{Field: "cc_cvv", Message: "CVV must be three-digit or four-digit number"})
	}

	if requireTacos && len(order.Tacos) == 0 {
		errs = append(errs, FieldError{Field: "tacos", Message: "Order must contain at least 1 taco"})
	}

	return errs
}

// ValidCreditCardNumber runs the Luhn checksum over a card number.
func ValidCreditCardNumber(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
