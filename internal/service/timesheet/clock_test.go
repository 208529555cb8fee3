package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		minutes int
		ok      bool
	}{
		{"two digit hour", "09:30", 570, true},
		{"single digit hour", "9:30", 570, true},
		{"midnight", "00:00", 0, true},
		{"last minute of day", "23:59", 1439, true},
		{"hour out of range", "24:00", 0, false},
		{"minute out of range", "10:60", 0, false},
		{"empty", "", 0, false},
		{"missing minutes", "10:", 0, false},
		{"single digit minutes", "10:5", 0, false},
		{"garbage", "abc", 0, false},
		{"negative hour", "-1:30", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, ok := ParseClock(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestClockDuration(t *testing.T) {
	t.Parallel()

	// Ordinary day shift
	assert.Equal(t, 480, ClockDuration("09:00", "17:00"))

	// Overnight shift crosses midnight and must not go negative
	assert.Equal(t, 480, ClockDuration("22:00", "06:00"))

	// Zero-length shift
	assert.Equal(t, 0, ClockDuration("09:00", "09:00"))

	// Malformed input degrades to zero
	assert.Equal(t, 0, ClockDuration("", "17:00"))
	assert.Equal(t, 0, ClockDuration("09:00", "25:00"))
}

func TestToDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minutes int
		want    ClockDisplay
	}{
		{"hours and minutes", 90, ClockDisplay{Hours: 1, Minutes: 30, DecimalHours: 1.5, Text: "1h 30m"}},
		{"whole hours", 480, ClockDisplay{Hours: 8, Minutes: 0, DecimalHours: 8, Text: "8h"}},
		{"minutes only", 45, ClockDisplay{Hours: 0, Minutes: 45, DecimalHours: 0.75, Text: "45m"}},
		{"zero", 0, ClockDisplay{Text: "0m"}},
		{"negative clamps to zero", -30, ClockDisplay{Text: "0m"}},
		{"decimal rounds to two places", 100, ClockDisplay{Hours: 1, Minutes: 40, DecimalHours: 1.67, Text: "1h 40m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDisplay(tt.minutes))
		})
	}
}
