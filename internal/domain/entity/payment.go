package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// Payment is money received against a bill. It is never edited, only
// soft-deleted.
type Payment struct {
	ID          uint             `gorm:"primaryKey" json:"-"`
	UUID        uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	BillID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"billId"`
	CustomerID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"customerId"`
	Amount      decimal.Decimal  `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentMode enum.PaymentMode `gorm:"size:20;not null" json:"paymentMode"`
	Note        string           `gorm:"size:255;not null;default:''" json:"note"`
	IsDeleted   bool             `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt   time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// BeforeCreate generates the public identifier before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
