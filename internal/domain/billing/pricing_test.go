package billing

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestPriceExample(t *testing.T) {
	lines := []Line{{Weight: d("10"), PricePerGram: d("5000"), MakingCharge: d("10")}}

	assertDecimal(t, "55000", LineTotal(lines[0]))

	totals := Price(lines, d("3"), d("200"))
	assertDecimal(t, "55000", totals.Subtotal)
	assertDecimal(t, "1644", totals.TaxAmount)
	assertDecimal(t, "56444", totals.Total)
}

func TestPriceEmpty(t *testing.T) {
	totals := Price(nil, d("3"), decimal.Zero)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestPriceDiscountAboveSubtotal(t *testing.T) {
	lines := []Line{{Weight: d("1"), PricePerGram: d("100"), MakingCharge: decimal.Zero}}

	totals := Price(lines, d("10"), d("150"))
	assertDecimal(t, "100", totals.Subtotal)
	assertDecimal(t, "-5", totals.TaxAmount)
	assertDecimal(t, "-55", totals.Total)
}

func TestPriceRoundsAccumulatedSumOnly(t *testing.T) {
	// Each line is 0.004; rounding per line would give 0.00.
	line := Line{Weight: d("0.004"), PricePerGram: d("1"), MakingCharge: decimal.Zero}
	totals := Price([]Line{line, line, line}, decimal.Zero, decimal.Zero)
	assertDecimal(t, "0.01", totals.Subtotal)
}

func TestRound2HalfUp(t *testing.T) {
	cases := map[string]string{
		"1.005":   "1.01",
		"1.004":   "1",
		"2.675":   "2.68",
		"-1.005":  "-1",
		"-1.006":  "-1.01",
		"1644":    "1644",
		"0.125":   "0.13",
		"99.9949": "99.99",
	}
	for in, want := range cases {
		got := Round2(d(in))
		assert.True(t, d(want).Equal(got), "Round2(%s): want %s, got %s", in, want, got)
	}
}

func TestPriceIsIdempotent(t *testing.T) {
	lines := []Line{
		{Weight: d("12.345"), PricePerGram: d("6123.45"), MakingCharge: d("12.5")},
		{Weight: d("3.3"), PricePerGram: d("82.1"), MakingCharge: d("8")},
	}
	first := Price(lines, d("3"), d("99.99"))
	second := Price(lines, d("3"), d("99.99"))

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestPriceInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cents := func(max int64) decimal.Decimal {
		return decimal.New(rng.Int63n(max), -2)
	}

	for i := 0; i < 500; i++ {
		n := rng.Intn(5) + 1
		lines := make([]Line, n)
		sum := decimal.Zero
		for j := range lines {
			lines[j] = Line{
				Weight:       decimal.New(rng.Int63n(100000), -3),
				PricePerGram: cents(1000000),
				MakingCharge: decimal.New(rng.Int63n(10000), -2),
			}
			sum = sum.Add(lines[j].Weight.Mul(lines[j].PricePerGram).Mul(decimal.NewFromInt(1).Add(lines[j].MakingCharge.Div(hundred))))
		}
		tax := decimal.New(rng.Int63n(10001), -2)
		discount := cents(10000000)

		totals := Price(lines, tax, discount)

		assert.True(t, Round2(sum).Equal(totals.Subtotal), "subtotal mismatch at %d", i)
		want := Round2(totals.Subtotal.Sub(discount).Mul(decimal.NewFromInt(1).Add(tax.Div(hundred))))
		assert.True(t, want.Equal(totals.Total), "total mismatch at %d: want %s got %s", i, want, totals.Total)
	}
}

func TestPriceItem(t *testing.T) {
	p := PriceItem(Line{Weight: d("10"), PricePerGram: d("5000"), MakingCharge: d("10")})
	assertDecimal(t, "5000", p.MakingChargeAmount)
	assertDecimal(t, "55000", p.Price)
}
