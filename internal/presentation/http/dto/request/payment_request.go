package request

import (
	"github.com/shopspring/decimal"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// CreatePaymentRequest represents a payment against a bill
type CreatePaymentRequest struct {
	BillID      string           `json:"billId" binding:"required,uuid"`
	Amount      decimal.Decimal  `json:"amount" binding:"dscale=2"`
	PaymentMode enum.PaymentMode `json:"paymentMode" binding:"required,oneof=Cash UPI Card"`
	Note        string           `json:"note" binding:"max=255"`
}

// ToInput converts the request to the service input
func (r *CreatePaymentRequest) ToInput() *service.CreatePaymentInput {
	return &service.CreatePaymentInput{
		BillID:      r.BillID,
		Amount:      r.Amount,
		PaymentMode: r.PaymentMode,
		Note:        r.Note,
	}
}
