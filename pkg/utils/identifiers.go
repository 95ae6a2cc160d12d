package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// BillNumberPrefix starts every human-readable bill number
const BillNumberPrefix = "BILL-"

var billNumberSpan = big.NewInt(900000)

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateBillNumber returns BILL- followed by six digits in 100000-999999
func GenerateBillNumber() string {
	n, err := rand.Int(rand.Reader, billNumberSpan)
	if err != nil {
		return BillNumberPrefix + uuid.New().String()[:6]
	}
	return fmt.Sprintf("%s%06d", BillNumberPrefix, n.Int64()+100000)
}
