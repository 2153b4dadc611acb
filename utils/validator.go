package utils

import (
	"cablepathapi/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct validates struct fields against their validate tags.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// IsValidCircuitSide reports whether side is a valid circuit side label.
func IsValidCircuitSide(side string) bool {
	return side == models.CircuitSideA || side == models.CircuitSideZ
}
