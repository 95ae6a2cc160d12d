package billing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, enum.PaymentStatusPending, DeriveStatus(decimal.Zero, d("100")))
	assert.Equal(t, enum.PaymentStatusPartialPaid, DeriveStatus(d("40"), d("60")))
	assert.Equal(t, enum.PaymentStatusPaid, DeriveStatus(d("100"), decimal.Zero))
}

func TestOpeningIsPending(t *testing.T) {
	s := Opening(Totals{Total: d("56444")})
	assert.Equal(t, enum.PaymentStatusPending, s.Status)
	assert.True(t, s.TotalPaid.IsZero())
	assertDecimal(t, "56444", s.DueAmount)

	empty := Opening(Totals{})
	assert.Equal(t, enum.PaymentStatusPending, empty.Status)
}

func TestApplyPaymentRejectsNonPositive(t *testing.T) {
	for _, amount := range []string{"0", "-1", "-0.01"} {
		_, err := ApplyPayment(d("100"), decimal.Zero, d(amount))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPayment))
		assert.Equal(t, ReasonNonPositiveAmount, err.Error())
	}
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	_, err := ApplyPayment(d("100"), d("40"), d("60.01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.Equal(t, ReasonExceedsDue, err.Error())
}

func TestApplyPaymentExactDue(t *testing.T) {
	s, err := ApplyPayment(d("56444"), decimal.Zero, d("56444"))
	require.NoError(t, err)
	assert.True(t, s.DueAmount.IsZero())
	assertDecimal(t, "56444", s.TotalPaid)
	assert.Equal(t, enum.PaymentStatusPaid, s.Status)

	_, err = ApplyPayment(d("56444"), s.TotalPaid, d("1"))
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestApplyPaymentPartial(t *testing.T) {
	s, err := ApplyPayment(d("1000"), d("200"), d("300"))
	require.NoError(t, err)
	assertDecimal(t, "500", s.TotalPaid)
	assertDecimal(t, "500", s.DueAmount)
	assert.Equal(t, enum.PaymentStatusPartialPaid, s.Status)
}

func TestStatusNeverReturnsToPending(t *testing.T) {
	total := d("1000")
	paid := decimal.Zero
	for _, amount := range []string{"1", "250.50", "0.49", "700", "48.01"} {
		s, err := ApplyPayment(total, paid, d(amount))
		require.NoError(t, err)
		assert.NotEqual(t, enum.PaymentStatusPending, s.Status)
		paid = s.TotalPaid
	}
	assert.True(t, paid.Equal(total))
}
