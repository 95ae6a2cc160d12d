// Package billing holds the arithmetic behind bills: deriving totals from
// line items and settling payments against those totals. Nothing in here
// touches storage.
package billing

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.RequireFromString("0.5")
)

// Line is the priced part of a line item.
type Line struct {
	Weight       decimal.Decimal
	PricePerGram decimal.Decimal
	MakingCharge decimal.Decimal // percent
}

// Totals are the derived amounts of a bill.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Round2 rounds half up (toward positive infinity) to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Add(half).Floor().Div(hundred)
}

// LineTotal is weight * rate * (1 + making/100), unrounded.
func LineTotal(l Line) decimal.Decimal {
	base := l.Weight.Mul(l.PricePerGram)
	return base.Add(base.Mul(l.MakingCharge).Div(hundred))
}

// Price derives subtotal, tax amount and total. Rounding happens on the
// accumulated values only, never per line. A discount larger than the
// subtotal is not clamped and yields a negative total.
func Price(lines []Line, taxPercent, discount decimal.Decimal) Totals {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(LineTotal(l))
	}

	subtotal := Round2(sum)
	taxable := subtotal.Sub(discount)
	taxAmount := Round2(taxable.Mul(taxPercent).Div(hundred))

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     Round2(taxable.Add(taxAmount)),
	}
}

// ItemPrice is the catalog breakdown of a single piece.
type ItemPrice struct {
	MakingChargeAmount decimal.Decimal
	Price              decimal.Decimal
}

// PriceItem splits a catalog item's price into material value and making
// charge.
func PriceItem(l Line) ItemPrice {
	base := l.Weight.Mul(l.PricePerGram)
	making := Round2(base.Mul(l.MakingCharge).Div(hundred))
	return ItemPrice{
		MakingChargeAmount: making,
		Price:              Round2(base).Add(making),
	}
}
