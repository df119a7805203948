// Package service holds the input checks that sit between handlers and repositories.
package service

import (
	"reflect"
	"strings"

	"codebook/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkInput validates in and reports any failure as a single validation error
// carrying message. Field-level detail is deliberately not exposed.
func checkInput(in any, message string) error {
	if err := validate.Struct(in); err != nil {
		return models.NewValidationError(message)
	}
	return nil
}
