package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("iso_date", validateISODate)
	v.RegisterValidation("destination", validateDestination)
	v.RegisterValidation("name_length", validateNameLength)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// A phone number needs at least 10 characters drawn from digits, spaces and
// the usual separators. The agency takes numbers from many countries, so no
// stricter shape is enforced.
func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) < 10 {
		return false
	}
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return true
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateDestination(fl validator.FieldLevel) bool {
	slug := fl.Field().String()
	validDestinations := map[string]bool{
		"senegal": true,
		"capvert": true,
		"benin":   true,
		"autre":   true,
	}
	return validDestinations[slug]
}

func validateNameLength(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return len(name) > 0 && len(name) <= 50
}
