package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagName is the struct tag read by both gin's binding and NewValidator.
const TagName = "binding"

// RegisterValidations adds the custom rules used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("money", validateMoney)
}

// NewValidator returns a validator reading the same tags gin binds with, so
// services enforce the request rules for non-HTTP callers too.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(TagName)
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// validateMoney accepts non-negative decimals.
func validateMoney(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}
