package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to the echo.Validator interface.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	// Report field names by their json tag so error hints match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validator: v}
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// JSONFieldName returns the json-tag name of the failed field.
func JSONFieldName(fe validator.FieldError) string {
	return fe.Field()
}
