package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator builds the request validator with the decimal comparison
// tags the DTOs use. validator/v10 knows nothing about shopspring decimals,
// so decimal_gt / decimal_gte compare against the tag parameter here.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("decimal_gt", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return value.GreaterThan(bound)
	})

	_ = v.RegisterValidation("decimal_gte", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return value.GreaterThanOrEqual(bound)
	})

	return v
}
