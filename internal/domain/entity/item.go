package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/billing"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// Item is a catalog piece. MakingChargeAmount and Price are derived from
// weight, rate and making charge whenever the item is written.
type Item struct {
	ID                 uint              `gorm:"primaryKey" json:"-"`
	UUID               uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Name               string            `gorm:"size:50;not null;index" json:"name"`
	Type               enum.MaterialType `gorm:"size:20;not null" json:"type"`
	Weight             decimal.Decimal   `gorm:"type:numeric(12,3);not null" json:"weight"`
	PricePerGram       decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"pricePerGram"`
	MakingCharge       decimal.Decimal   `gorm:"type:numeric(5,2);not null;default:0" json:"makingCharge"`
	MakingChargeAmount decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0" json:"makingChargeAmount"`
	Price              decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0" json:"price"`
	IsDeleted          bool              `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// BeforeCreate generates the public identifier before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.UUID == uuid.Nil {
		i.UUID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// PricingLine returns the inputs the price is derived from
func (i *Item) PricingLine() billing.Line {
	return billing.Line{
		Weight:       i.Weight,
		PricePerGram: i.PricePerGram,
		MakingCharge: i.MakingCharge,
	}
}

// Reprice recomputes the derived price fields
func (i *Item) Reprice() {
	p := billing.PriceItem(i.PricingLine())
	i.MakingChargeAmount = p.MakingChargeAmount
	i.Price = p.Price
}
