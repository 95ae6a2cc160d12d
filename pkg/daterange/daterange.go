// Package daterange resolves the named reporting periods accepted by the
// search endpoints into half-open [Start, End) time bounds.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Preset names a reporting period.
type Preset string

const (
	ThisMonth   Preset = "thisMonth"
	LastMonth   Preset = "lastMonth"
	Last2Months Preset = "last2Months"
	Last3Months Preset = "last3Months"
	Quarterly   Preset = "quarterly"
	HalfYearly  Preset = "halfYearly"
	LastYear    Preset = "lastYear"
)

// Presets lists every accepted preset.
var Presets = []Preset{ThisMonth, LastMonth, Last2Months, Last3Months, Quarterly, HalfYearly, LastYear}

// ErrUnknownPreset is returned for a name outside Presets.
var ErrUnknownPreset = errors.New("unknown date range")

// Range is a half-open interval: Start <= t < End.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Resolve turns a preset into bounds relative to ref. Rolling presets end at
// ref; lastMonth ends at the first instant of ref's month.
func Resolve(preset Preset, ref time.Time) (Range, error) {
	monthStart := now.With(ref).BeginningOfMonth()

	switch preset {
	case ThisMonth:
		return Range{Start: monthStart, End: ref}, nil
	case LastMonth:
		return Range{Start: monthStart.AddDate(0, -1, 0), End: monthStart}, nil
	case Last2Months:
		return Range{Start: monthsBefore(ref, 2), End: ref}, nil
	case Last3Months, Quarterly:
		return Range{Start: monthsBefore(ref, 3), End: ref}, nil
	case HalfYearly:
		return Range{Start: monthsBefore(ref, 6), End: ref}, nil
	case LastYear:
		return Range{Start: monthsBefore(ref, 12), End: ref}, nil
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(preset))
	}
}

// monthsBefore steps back n calendar months, clamping the day so that
// 31 May minus three months is 28 or 29 February rather than early March.
func monthsBefore(t time.Time, n int) time.Time {
	firstOfTarget := now.With(t).BeginningOfMonth().AddDate(0, -n, 0)
	lastDay := now.With(firstOfTarget).EndOfMonth().Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
