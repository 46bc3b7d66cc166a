package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegistrationForm is the transient new-account submission. Field rules are
// declared as validate tags; the confirm/password match is checked separately
// because it spans two fields.
type RegistrationForm struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Zip      string `json:"zip" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

var registrationMessages = map[string]string{
	"Username": "Username must be at least 3 characters long",
	"Password": "Password is required",
	"Confirm":  "Password confirmation is required",
	"FullName": "Full name is required",
	"Street":   "Street is required",
	"City":     "City is required",
	"State":    "State is required",
	"Zip":      "Zip code is required",
	"Phone":    "Phone number is required",
}

var registrationFields = map[string]string{
	"Username": "username",
	"Password": "password",
	"Confirm":  "confirm",
	"FullName": "full_name",
	"Street":   "street",
	"City":     "city",
	"State":    "state",
	"Zip":      "zip",
	"Phone":    "phone",
}

// ValidateRegistration collects every field failure on the form, including
// the password/confirm mismatch.
func ValidateRegistration(form *RegistrationForm) []FieldError {
	var errs []FieldError

	if err := validate.Struct(form); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs = append(errs, FieldError{
					Field:   registrationFields[fe.StructField()],
					Message: registrationMessages[fe.StructField()],
				})
			}
		}
	}

	if form.Password != "" && form.Confirm != "" && form.Password != form.Confirm {
		errs = append(errs, FieldError{Field: "confirm", Message: "Passwords do not match"})
	}

	return errs
}
