package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() RegistrationForm {
	return RegistrationForm{
		Username: "jane",
		Password: "secret1",
		Confirm:  "secret1",
		FullName: "Jane Doe",
		Street:   "1 Main",
		City:     "Springfield",
		State:    "IL",
		Zip:      "60601",
		Phone:    "555-1234",
	}
}

func TestValidateRegistrationValid(t *testing.T) {
	form := validRegistration()
	assert.Empty(t, ValidateRegistration(&form))
}

func TestValidateRegistrationPasswordMismatch(t *testing.T) {
	form := validRegistration()
	form.Password = "secret1"
	form.Confirm = "secret2"

	errs := ValidateRegistration(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "confirm", errs[0].Field)
	assert.Equal(t, "Passwords do not match", errs[0].Message)
}

func TestValidateRegistrationShortUsername(t *testing.T) {
	form := validRegistration()
	form.Username = "jd"

	errs := ValidateRegistration(&form)
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
}

func TestValidateRegistrationCollectsAllFailures(t *testing.T) {
	form := RegistrationForm{Username: "jd"}
	errs := ValidateRegistration(&form)

	fields := fieldsOf(errs)
	assert.ElementsMatch(t, []string{
		"username", "password", "confirm", "full_name", "street", "city", "state", "zip", "phone",
	}, fields)
}
