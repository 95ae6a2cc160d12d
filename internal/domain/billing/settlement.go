package billing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// ErrInvalidPayment is matched by every payment rejected by ApplyPayment.
var ErrInvalidPayment = errors.New("invalid payment")

// PaymentError carries the human-readable reason a payment was rejected.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return e.Reason
}

func (e *PaymentError) Is(target error) bool {
	return target == ErrInvalidPayment
}

const (
	ReasonNonPositiveAmount = "Payment amount must be greater than zero"
	ReasonExceedsDue        = "Payment exceeds due amount"
)

// Settlement is the paid/due state of a bill.
type Settlement struct {
	TotalPaid decimal.Decimal
	DueAmount decimal.Decimal
	Status    enum.PaymentStatus
}

// DeriveStatus maps paid and due amounts to a status:
// nothing paid is Pending, nothing due is Paid, anything else is Partial Paid.
func DeriveStatus(totalPaid, dueAmount decimal.Decimal) enum.PaymentStatus {
	switch {
	case !totalPaid.IsPositive():
		return enum.PaymentStatusPending
	case dueAmount.Sign() <= 0:
		return enum.PaymentStatusPaid
	default:
		return enum.PaymentStatusPartialPaid
	}
}

// Settle recomputes due amount and status for a bill total and the amount
// already paid against it.
func Settle(total, totalPaid decimal.Decimal) Settlement {
	due := total.Sub(totalPaid)
	return Settlement{
		TotalPaid: totalPaid,
		DueAmount: due,
		Status:    DeriveStatus(totalPaid, due),
	}
}

// Opening is the settlement of a freshly created bill.
func Opening(totals Totals) Settlement {
	return Settlement{
		TotalPaid: decimal.Zero,
		DueAmount: totals.Total,
		Status:    enum.PaymentStatusPending,
	}
}

// ApplyPayment validates amount against what is still due and returns the
// resulting settlement. A payment is applied whole or rejected whole.
func ApplyPayment(total, totalPaid, amount decimal.Decimal) (Settlement, error) {
	if !amount.IsPositive() {
		return Settlement{}, &PaymentError{Reason: ReasonNonPositiveAmount}
	}
	if amount.GreaterThan(total.Sub(totalPaid)) {
		return Settlement{}, &PaymentError{Reason: ReasonExceedsDue}
	}
	return Settle(total, totalPaid.Add(amount)), nil
}
