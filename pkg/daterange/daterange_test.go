package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2025, time.May, 31, 15, 4, 5, 0, time.UTC)

func TestResolve(t *testing.T) {
	cases := []struct {
		preset Preset
		start  time.Time
		end    time.Time
	}{
		{ThisMonth, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), ref},
		{LastMonth, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{Last2Months, time.Date(2025, time.March, 31, 15, 4, 5, 0, time.UTC), ref},
		{Last3Months, time.Date(2025, time.February, 28, 15, 4, 5, 0, time.UTC), ref},
		{Quarterly, time.Date(2025, time.February, 28, 15, 4, 5, 0, time.UTC), ref},
		{HalfYearly, time.Date(2024, time.November, 30, 15, 4, 5, 0, time.UTC), ref},
		{LastYear, time.Date(2024, time.May, 31, 15, 4, 5, 0, time.UTC), ref},
	}

	for _, tc := range cases {
		t.Run(string(tc.preset), func(t *testing.T) {
			r, err := Resolve(tc.preset, ref)
			require.NoError(t, err)
			assert.True(t, tc.start.Equal(r.Start), "start: want %s got %s", tc.start, r.Start)
			assert.True(t, tc.end.Equal(r.End), "end: want %s got %s", tc.end, r.End)
		})
	}
}

func TestLastMonthIsHalfOpen(t *testing.T) {
	r, err := Resolve(LastMonth, ref)
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(r.Start))
}

func TestLastMonthAcrossYear(t *testing.T) {
	r, err := Resolve(LastMonth, time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("fortnight", ref)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
