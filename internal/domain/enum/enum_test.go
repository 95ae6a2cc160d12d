package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialTypeJSON(t *testing.T) {
	var got struct {
		Type MaterialType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Silver"}`), &got))
	assert.Equal(t, MaterialSilver, got.Type)

	err := json.Unmarshal([]byte(`{"type":"Copper"}`), &got)
	assert.Error(t, err)
}

func TestPaymentModeAllowsEmpty(t *testing.T) {
	var got struct {
		Mode PaymentMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":""}`), &got))
	assert.Equal(t, PaymentModeNone, got.Mode)
	assert.False(t, got.Mode.IsValid())

	require.NoError(t, json.Unmarshal([]byte(`{"mode":"UPI"}`), &got))
	assert.True(t, got.Mode.IsValid())

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"Cheque"}`), &got))
}

func TestPaymentStatusScan(t *testing.T) {
	var s PaymentStatus
	require.NoError(t, s.Scan([]byte("Partial Paid")))
	assert.Equal(t, PaymentStatusPartialPaid, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, PaymentStatusPending, s)

	assert.Error(t, s.Scan(42))

	v, err := PaymentStatus("").Value()
	require.NoError(t, err)
	assert.Equal(t, "Pending", v)
}
