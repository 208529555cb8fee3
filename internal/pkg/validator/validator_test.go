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

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "45", "0600"}
	invalid := []string{"", "-1", "1.5", "1h", " 1"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-01", "2026-12-31", "2024-02-29"}
	invalid := []string{"2026-13-01", "2026-02-30", "01-01-2026", "2026/01/01", "", "today"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "23:59"}
	invalid := []string{"24:00", "12:60", "12:5", "1230", "12:30:00", "", "noon"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"name", "department", "rate"}
	if !IsInSlice("rate", slice) {
		t.Errorf("IsInSlice(%q) = false, want true", "rate")
	}
	if IsInSlice("Rate", slice) {
		t.Errorf("IsInSlice(%q) = true, want false", "Rate")
	}
	if IsInSlice("", slice) {
		t.Errorf("IsInSlice(%q) = true, want false", "")
	}
}
