// Package scheduling holds the pure time-window logic behind slot
// generation and conflict detection. Clock times are fixed-width "HH:MM"
// wall-clock strings, so lexicographic comparison matches chronological
// order and no timezone math is ever performed here; the provider's
// timezone label travels alongside the windows untouched. Postgres reads
// TIME columns back as "HH:MM:SS" with an optional fractional part, so
// every comparison normalizes its inputs to the canonical form first.
package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// Slot duration bounds in minutes for generated candidate windows
const (
	DefaultSlotDuration = 30
	MinSlotDuration     = 10
	MaxSlotDuration     = 240
)

// ErrInvalidClock is returned for times not in HH:MM form
var ErrInvalidClock = errors.New("invalid time format, use HH:MM")

// Window is a candidate bookable time-of-day window on a single date
type Window struct {
	StartTime string
	EndTime   string
}

// ParseClock converts a clock string to minutes since midnight. Both the
// canonical "HH:MM" form and the "HH:MM:SS[.ffffff]" form Postgres emits
// for TIME columns are accepted; seconds are discarded. The width checks
// matter: time.Parse accepts single-digit hours, which would break
// lexicographic ordering.
func ParseClock(s string) (int, error) {
	if len(s) < 5 || s[2] != ':' {
		return 0, ErrInvalidClock
	}
	layout := "15:04"
	if len(s) > 5 {
		if s[5] != ':' {
			return 0, ErrInvalidClock
		}
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to "HH:MM"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock rewrites a clock string to the canonical "HH:MM" form.
// Strings that do not parse come back unchanged.
func NormalizeClock(s string) string {
	minutes, err := ParseClock(s)
	if err != nil {
		return s
	}
	return FormatClock(minutes)
}

// GenerateWindows expands an availability window into consecutive candidate
// windows of exactly duration minutes, starting at start and advancing by
// duration each step. A trailing partial window is dropped, not clipped.
// The result is empty when end <= start or either time is malformed.
func GenerateWindows(start, end string, duration int) []Window {
	startMin, err := ParseClock(start)
	if err != nil {
		return nil
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return nil
	}
	if endMin <= startMin || duration <= 0 {
		return nil
	}

	var windows []Window
	for cursor := startMin; cursor+duration <= endMin; cursor += duration {
		windows = append(windows, Window{
			StartTime: FormatClock(cursor),
			EndTime:   FormatClock(cursor + duration),
		})
	}
	return windows
}

// Overlaps reports whether two half-open windows [aStart,aEnd) and
// [bStart,bEnd) share any time. Windows that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	aStart, aEnd = NormalizeClock(aStart), NormalizeClock(aEnd)
	bStart, bEnd = NormalizeClock(bStart), NormalizeClock(bEnd)
	return !(aEnd <= bStart || aStart >= bEnd)
}

// WithinWindow reports whether [start,end) is fully contained in
// [availStart,availEnd]. Boundary equality on either side is accepted.
func WithinWindow(start, end, availStart, availEnd string) bool {
	start, end = NormalizeClock(start), NormalizeClock(end)
	availStart, availEnd = NormalizeClock(availStart), NormalizeClock(availEnd)
	return start >= availStart && end <= availEnd
}

// DurationMinutes returns end - start in minutes
func DurationMinutes(start, end string) (int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return endMin - startMin, nil
}
