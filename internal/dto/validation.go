package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs the custom binding validations used by the
// request DTOs on the given validator engine (gin's binding validator).
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("posdecimal", positiveDecimal)
}

// positiveDecimal validates that a decimal.Decimal field is strictly greater
// than zero with at most two decimal places. Sub-cent precision would be
// silently rounded by the store's NUMERIC(20,2) columns, so it is rejected
// here instead.
func positiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive() && d.Exponent() >= -2
}
