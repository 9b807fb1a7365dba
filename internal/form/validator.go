package form

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRe   = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("pincode", validatePincode)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}

func validatePincode(fl validator.FieldLevel) bool {
	return pincodeRe.MatchString(fl.Field().String())
}
