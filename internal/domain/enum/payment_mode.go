package enum

import (
	"encoding/json"
	"fmt"
)

// PaymentMode is how a customer settled (part of) a bill
type PaymentMode string

const (
	PaymentModeNone PaymentMode = ""
	PaymentModeCash PaymentMode = "Cash"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeCard PaymentMode = "Card"
)

func (p PaymentMode) String() string {
	return string(p)
}

// IsValid reports whether p is a mode a payment can be recorded with
func (p PaymentMode) IsValid() bool {
	switch p {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard:
		return true
	}
	return false
}

func (p *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	mode := PaymentMode(str)
	if mode != PaymentModeNone && !mode.IsValid() {
		return fmt.Errorf("invalid payment mode %q", str)
	}
	*p = mode
	return nil
}
