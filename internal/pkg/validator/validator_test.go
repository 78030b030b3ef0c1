package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMatricule(t *testing.T) {
	valid := []string{"DB", "EMP001", "A1-B2", "X", "AG-2024-001"}
	invalid := []string{"", "emp001", "-EMP", "EMP-", "EMP 001", "EMPLOYEE-MATRICULE-TOO-LONG-123"}
	for _, m := range valid {
		if !IsValidMatricule(m) {
			t.Errorf("IsValidMatricule(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMatricule(m) {
			t.Errorf("IsValidMatricule(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2000-12-31"}
	invalid := []string{"2025-13-01", "2025-01-32", "2025/01/01", "01-01-2025", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2025-01", "2024-12"}
	invalid := []string{"2025-13", "2025-1", "2025", "01-2025", ""}
	for _, s := range valid {
		if _, ok := IsValidMonth(s); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00:00", "08:00:00", "23:59:59"}
	invalid := []string{"24:00:00", "8:00:00", "08:00", "08:61:00", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidPlatform(t *testing.T) {
	valid := []string{"ios", "android", "desktop"}
	invalid := []string{"", "IOS", "web", "windows"}
	for _, s := range valid {
		if !IsValidPlatform(s) {
			t.Errorf("IsValidPlatform(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPlatform(s) {
			t.Errorf("IsValidPlatform(%q) = true, want false", s)
		}
	}
}
