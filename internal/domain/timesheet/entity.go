package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one raw timesheet row: at most one per (employee, date) pair.
// StartTime/EndTime are wall-clock "HH:MM" strings; the derived hour fields
// are advisory and are recomputed from the raw times plus the current
// settings whenever they are read.
type Entry struct {
	ID                   string
	EmployeeID           string
	Date                 string // YYYY-MM-DD
	StartTime            *string
	EndTime              *string
	BreakMinutes         int
	RegularHours         float64
	OvertimeHours        float64
	HolidayOvertimeHours float64
	TotalHours           float64
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// DTO
	EmployeeName *string
}

// LeaveDay overrides both the entry and the holiday calendar for its date.
// Exactly one may exist per (employee, date).
type LeaveDay struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	Status     Status
	CreatedAt  time.Time
}

// Holiday marks a date as non-working for every employee unless an
// explicit LeaveDay override exists for that date.
type Holiday struct {
	ID        string
	Date      string // YYYY-MM-DD
	Name      string
	CreatedAt time.Time
}

// Settings is the engine configuration. It is read on every recomputation,
// so changing the threshold retroactively changes derived hours for days
// that only have raw times stored.
type Settings struct {
	ID                            string
	AutoOvertimeEnabled           bool
	OvertimeThresholdHours        float64
	HolidayOvertimeRateMultiplier float64
	UpdatedAt                     time.Time
}

// DefaultSettings returns the configuration used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		AutoOvertimeEnabled:           true,
		OvertimeThresholdHours:        8,
		HolidayOvertimeRateMultiplier: 2.0,
	}
}

// HourSplit is the splitter's output for one work day.
type HourSplit struct {
	RegularHours         float64
	OvertimeHours        float64
	HolidayOvertimeHours float64
	TotalHours           float64
}

// ResolvedDay is the engine's computed output for one (employee, date)
// pair. It is derived on demand and never persisted.
type ResolvedDay struct {
	EmployeeID           string
	Date                 string
	Status               Status
	StartTime            *string
	EndTime              *string
	BreakMinutes         int
	RegularHours         float64
	OvertimeHours        float64
	HolidayOvertimeHours float64
	TotalHours           float64
}

// MonthlyTotals aggregates one employee's resolved days over a calendar
// month.
type MonthlyTotals struct {
	EmployeeID           string
	TotalRegular         float64
	TotalOvertime        float64
	TotalHolidayOvertime float64
	TotalHours           float64
	TotalDaysWorked      int
	TotalPay             decimal.Decimal
}
