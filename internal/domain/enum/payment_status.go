package enum

import (
	"database/sql/driver"
	"fmt"
)

// PaymentStatus tracks how much of a bill has been settled
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "Pending"
	PaymentStatusPartialPaid PaymentStatus = "Partial Paid"
	PaymentStatusPaid        PaymentStatus = "Paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the three settlement states
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartialPaid, PaymentStatusPaid:
		return true
	}
	return false
}

func (s PaymentStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(PaymentStatusPending), nil
	}
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	case nil:
		*s = PaymentStatusPending
	default:
		return fmt.Errorf("cannot scan %T into PaymentStatus", value)
	}
	return nil
}
