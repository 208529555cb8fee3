package timesheet

import "errors"

// Timesheet domain errors
var (
	// Cell edit errors
	ErrInvalidStatus   = errors.New("invalid day status")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDayField = errors.New("field must be start_time, end_time or break_minutes")

	// General errors
	ErrEntryNotFound    = errors.New("timesheet entry not found")
	ErrSettingsNotFound = errors.New("engine settings not found")
)
