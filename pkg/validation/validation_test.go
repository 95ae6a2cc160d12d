package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string          `json:"name" validate:"required,min=2"`
	Weight decimal.Decimal `json:"weight" validate:"dgte=0,dlte=1000000"`
	Amount decimal.Decimal `json:"amount" validate:"dgt=0"`
}

func TestDecimalRules(t *testing.T) {
	v := New()

	ok := sample{Name: "Ring", Weight: decimal.NewFromInt(10), Amount: decimal.RequireFromString("0.01")}
	assert.NoError(t, v.Struct(ok))

	bad := sample{Name: "R", Weight: decimal.NewFromInt(-1), Amount: decimal.Zero}
	err := v.Struct(bad)
	require.Error(t, err)

	verrs, isValidation := err.(validator.ValidationErrors)
	require.True(t, isValidation)

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, "min", fields["name"])
	assert.Equal(t, "dgte", fields["weight"])
	assert.Equal(t, "dgt", fields["amount"])
}

func TestUpperBound(t *testing.T) {
	v := New()
	s := sample{Name: "Chain", Weight: decimal.NewFromInt(1000001), Amount: decimal.NewFromInt(1)}
	err := v.Struct(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dlte")
}

func TestDecimalScale(t *testing.T) {
	type money struct {
		Amount decimal.Decimal `json:"amount" validate:"dscale=2"`
		Weight decimal.Decimal `json:"weight" validate:"dscale=3"`
	}
	v := New()

	assert.NoError(t, v.Struct(money{Amount: decimal.RequireFromString("56443.99"), Weight: decimal.RequireFromString("1.234")}))
	assert.NoError(t, v.Struct(money{Amount: decimal.RequireFromString("1.500"), Weight: decimal.NewFromInt(2)}))
	assert.NoError(t, v.Struct(money{Amount: decimal.RequireFromString("-0.01")}))

	err := v.Struct(money{Amount: decimal.RequireFromString("56443.999"), Weight: decimal.RequireFromString("1.2345")})
	require.Error(t, err)
	verrs, isValidation := err.(validator.ValidationErrors)
	require.True(t, isValidation)
	require.Len(t, verrs, 2)
	for _, fe := range verrs {
		assert.Equal(t, "dscale", fe.Tag())
	}
}
