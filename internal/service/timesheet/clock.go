package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock parses a wall-clock string ("H:MM" or "HH:MM") into minutes
// since midnight. Malformed or out-of-range input reports ok=false; callers
// treat that as zero duration rather than failing the whole computation.
func ParseClock(text string) (int, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// ClockDuration returns end minus start in minutes. An end earlier than the
// start means the shift crossed midnight, so a full day is added before
// taking the difference: "22:00"–"06:00" is 480, never negative. Unparsable
// input on either side yields zero.
func ClockDuration(startText, endText string) int {
	start, ok := ParseClock(startText)
	if !ok {
		return 0
	}
	end, ok := ParseClock(endText)
	if !ok {
		return 0
	}

	if end < start {
		end += minutesPerDay
	}

	minutes := end - start
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}

// ClockDisplay is the decomposed display form of a minute count.
type ClockDisplay struct {
	Hours        int
	Minutes      int
	DecimalHours float64
	Text         string
}

// ToDisplay decomposes minutes into the form the UI renders: "1h 30m",
// "8h", "45m", or "0m" for zero or negative input.
func ToDisplay(minutes int) ClockDisplay {
	if minutes <= 0 {
		return ClockDisplay{Text: "0m"}
	}

	hours := minutes / 60
	remainder := minutes % 60
	decimal := math.Round(float64(minutes)/60*100) / 100

	var text string
	switch {
	case hours > 0 && remainder > 0:
		text = fmt.Sprintf("%dh %dm", hours, remainder)
	case hours > 0:
		text = fmt.Sprintf("%dh", hours)
	default:
		text = fmt.Sprintf("%dm", remainder)
	}

	return ClockDisplay{
		Hours:        hours,
		Minutes:      remainder,
		DecimalHours: decimal,
		Text:         text,
	}
}
