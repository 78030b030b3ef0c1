package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// Clock strings are always "HH:MM:SS"; the scanner writes them in that
// shape and every report reads them back the same way.
const ClockLayout = "15:04:05"

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// ParseError reports a clock string that does not match HH:MM:SS.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time of day %q: want HH:MM:SS", e.Value)
}

// TimeOfDay is a clock time pinned to a fixed reference date, so two
// values compare without any calendar rollover.
type TimeOfDay struct {
	t time.Time
}

// ParseTimeOfDay parses a strict HH:MM:SS clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !clockRegex.MatchString(s) {
		return TimeOfDay{}, &ParseError{Value: s}
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return TimeOfDay{}, &ParseError{Value: s}
	}
	return TimeOfDay{t: t}, nil
}

// MustTimeOfDay is a test/config helper; it panics on malformed input.
func MustTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// FromTime keeps only the clock portion of t.
func FromTime(t time.Time) TimeOfDay {
	ref, _ := ParseTimeOfDay(t.Format(ClockLayout))
	return ref
}

func (t TimeOfDay) String() string {
	return t.t.Format(ClockLayout)
}

// Before reports whether t is strictly earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.t.Before(u.t)
}

// After reports whether t is strictly later in the day than u.
func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.t.After(u.t)
}

// Add returns the clock time d later on the same reference date.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return TimeOfDay{t: t.t.Add(d)}
}

// Minutes returns end - start in whole minutes on the reference date.
// The result is negative when end precedes start; callers treat that as
// bad data, never as a next-day departure.
func Minutes(start, end TimeOfDay) int {
	return int(end.t.Sub(start.t).Minutes())
}

// FormatDuration renders minutes as "{hours}h{mm}", e.g. 125 -> "2h05".
// Zero and negative durations render as "-".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}
