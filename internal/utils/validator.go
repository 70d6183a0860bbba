// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("order_type", validateOrderType)
	validate.RegisterValidation("platform", validatePlatform)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateOrderType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "purchase", "gift":
		return true
	}
	return false
}

func validatePlatform(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "amazon", "ebay", "walmart":
		return true
	}
	return false
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must not be negative"
	case "order_type":
		return "Order type must be purchase or gift"
	case "platform":
		return "Platform must be amazon, ebay, or walmart"
	default:
		return e.Field() + " is invalid"
	}
}
