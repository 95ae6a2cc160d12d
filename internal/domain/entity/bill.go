package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/billing"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// LineItem is one priced entry of a bill. It has no identity of its own.
type LineItem struct {
	Name         string            `json:"name"`
	Type         enum.MaterialType `json:"type"`
	Weight       decimal.Decimal   `json:"weight"`
	PricePerGram decimal.Decimal   `json:"pricePerGram"`
	MakingCharge decimal.Decimal   `json:"makingCharge"`
}

// PricingLine returns the inputs the line total is derived from
func (l LineItem) PricingLine() billing.Line {
	return billing.Line{
		Weight:       l.Weight,
		PricePerGram: l.PricePerGram,
		MakingCharge: l.MakingCharge,
	}
}

// Total is the unrounded line total
func (l LineItem) Total() decimal.Decimal {
	return billing.LineTotal(l.PricingLine())
}

// Bill is a sale to a customer. Totals, due amount and status are derived
// values and are rewritten by the service on every change.
type Bill struct {
	ID            uint                          `gorm:"primaryKey" json:"-"`
	UUID          uuid.UUID                     `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	BillNumber    string                        `gorm:"size:20;uniqueIndex;not null" json:"billNumber"`
	CustomerID    uuid.UUID                     `gorm:"type:uuid;not null;index" json:"customerId"`
	Items         datatypes.JSONSlice[LineItem] `json:"items"`
	Tax           decimal.Decimal               `gorm:"type:numeric(5,2);not null;default:0" json:"tax"`
	TaxAmount     decimal.Decimal               `gorm:"type:numeric(14,2);not null;default:0" json:"taxAmount"`
	Discount      decimal.Decimal               `gorm:"type:numeric(14,2);not null;default:0" json:"discount"`
	Subtotal      decimal.Decimal               `gorm:"type:numeric(14,2);not null;default:0" json:"subtotal"`
	Total         decimal.Decimal               `gorm:"type:numeric(14,2);not null;default:0" json:"total"`
	DueAmount     decimal.Decimal               `gorm:"type:numeric(14,2);not null;default:0" json:"dueAmount"`
	TotalPaid     decimal.Decimal               `gorm:"type:numeric(14,2);not null;default:0" json:"totalPaid"`
	PaymentMode   enum.PaymentMode              `gorm:"size:20;not null;default:''" json:"paymentMode"`
	PaymentStatus enum.PaymentStatus            `gorm:"size:20;not null;default:Pending;index" json:"paymentStatus"`
	Version       int                           `gorm:"not null;default:1" json:"-"`
	IsDeleted     bool                          `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt     time.Time                     `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time                     `json:"updatedAt"`
}

// BeforeCreate generates the public identifier before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.UUID == uuid.Nil {
		b.UUID = uuid.New()
	}
	if b.Version == 0 {
		b.Version = 1
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// PricingLines returns the pricing inputs of every line item in order
func (b *Bill) PricingLines() []billing.Line {
	return lo.Map(b.Items, func(l LineItem, _ int) billing.Line {
		return l.PricingLine()
	})
}

// ApplyTotals stores derived totals on the bill
func (b *Bill) ApplyTotals(t billing.Totals) {
	b.Subtotal = t.Subtotal
	b.TaxAmount = t.TaxAmount
	b.Total = t.Total
}

// ApplySettlement stores paid amount, due amount and status on the bill
func (b *Bill) ApplySettlement(s billing.Settlement) {
	b.TotalPaid = s.TotalPaid
	b.DueAmount = s.DueAmount
	b.PaymentStatus = s.Status
}

// BillSettlement is the column set written when a payment is applied
type BillSettlement struct {
	BillUUID        uuid.UUID
	ExpectedVersion int
	Settlement      billing.Settlement
	PaymentMode     enum.PaymentMode
}
