package timeutil

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	valid := []string{"00:00:00", "08:00:00", "17:30:59", "23:59:59"}
	invalid := []string{"", "8:00:00", "24:00:00", "12:60:00", "12:00:60", "12:00", "12h00m00", "ab:cd:ef", "12:00:00 "}

	for _, s := range valid {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) failed: %v", s, err)
			continue
		}
		if tod.String() != s {
			t.Errorf("ParseTimeOfDay(%q).String() = %q", s, tod.String())
		}
	}
	for _, s := range invalid {
		_, err := ParseTimeOfDay(s)
		if err == nil {
			t.Errorf("ParseTimeOfDay(%q) succeeded, want error", s)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseTimeOfDay(%q) returned %T, want *ParseError", s, err)
		}
	}
}

func TestMinutes(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"08:00:00", "17:00:00", 540},
		{"08:00:00", "09:00:00", 60},
		{"08:30:00", "08:30:00", 0},
		{"08:00:30", "08:01:29", 0}, // sub-minute remainder truncated
		{"17:00:00", "08:00:00", -540},
	}
	for _, c := range cases {
		got := Minutes(MustTimeOfDay(c.start), MustTimeOfDay(c.end))
		if got != c.want {
			t.Errorf("Minutes(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{540, "9h00"},
		{125, "2h05"},
		{61, "1h01"},
		{59, "0h59"},
		{1, "0h01"},
		{0, "-"},
		{-30, "-"},
	}
	for _, c := range cases {
		got := FormatDuration(c.minutes)
		if got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestDurationFormatRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"08:00:00", "17:15:00"},
		{"09:05:00", "12:05:00"},
		{"07:59:00", "08:00:00"},
	}
	wants := []string{"9h15", "3h00", "0h01"}
	for i, p := range pairs {
		mins := Minutes(MustTimeOfDay(p[0]), MustTimeOfDay(p[1]))
		if got := FormatDuration(mins); got != wants[i] {
			t.Errorf("FormatDuration(Minutes(%s, %s)) = %q, want %q", p[0], p[1], got, wants[i])
		}
	}
}
