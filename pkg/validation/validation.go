// Package validation configures go-playground/validator with the rules used
// by request DTOs and service inputs, including decimal range checks.
package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that reports JSON field names and knows the
// decimal rules.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	Register(v)
	return v
}

// Register installs the custom rules on an existing validator, such as the
// one backing gin's binding.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonTagName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("dgte", decimalCompare(func(c int) bool { return c >= 0 }))
	_ = v.RegisterValidation("dlte", decimalCompare(func(c int) bool { return c <= 0 }))
	_ = v.RegisterValidation("dgt", decimalCompare(func(c int) bool { return c > 0 }))
	_ = v.RegisterValidation("dscale", decimalScale)
}

func jsonTagName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func decimalCompare(ok func(int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		raw, isString := fl.Field().Interface().(string)
		if !isString {
			return false
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return false
		}
		return ok(value.Cmp(bound))
	}
}

// decimalScale allows at most param decimal places. Trailing zeros do not
// count, so 1.500 passes dscale=2.
func decimalScale(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	raw, isString := fl.Field().Interface().(string)
	if !isString {
		return false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return value.Equal(value.Truncate(int32(places)))
}

// decimalValue exposes decimals to the validator as their string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}
