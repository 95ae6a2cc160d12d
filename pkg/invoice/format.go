package invoice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is printed before every amount. The core PDF fonts have no
// rupee glyph.
const CurrencyPrefix = "Rs. "

// DateLayout is the invoice date format, e.g. 02 Jan 2006
const DateLayout = "02 Jan 2006"

// Amount formats d with two decimals and comma thousands separators.
func Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + group(intPart) + "." + frac
}

// Money is Amount with the currency prefix.
func Money(d decimal.Decimal) string {
	return CurrencyPrefix + Amount(d)
}

// Weight formats grams with two decimals.
func Weight(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Percent formats a making charge such as 10 or 12.5 as 10% or 12.5%.
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// Date formats t in the invoice date layout.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
