package timesheet

import (
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
)

// Split computes the regular/overtime division for one worked day from its
// raw wall-clock inputs and the current settings. Missing or malformed times
// degrade to an all-zero split; a break longer than the shift clamps to zero
// rather than going negative.
//
// HolidayOvertimeHours is always zero here: the splitter only knows about
// the regular/overtime boundary. Holiday-overtime is a field the aggregator
// sums but nothing assigns automatically.
func (e *Engine) Split(startTime, endTime *string, breakMinutes int, cfg timesheet.Settings) timesheet.HourSplit {
	if startTime == nil || endTime == nil {
		return timesheet.HourSplit{}
	}
	if _, ok := ParseClock(*startTime); !ok {
		return timesheet.HourSplit{}
	}
	if _, ok := ParseClock(*endTime); !ok {
		return timesheet.HourSplit{}
	}

	rawMinutes := ClockDuration(*startTime, *endTime) - breakMinutes
	if rawMinutes < 0 {
		rawMinutes = 0
	}

	totalHours := float64(rawMinutes) / 60

	if !cfg.AutoOvertimeEnabled || totalHours <= cfg.OvertimeThresholdHours {
		return timesheet.HourSplit{
			RegularHours: totalHours,
			TotalHours:   totalHours,
		}
	}

	return timesheet.HourSplit{
		RegularHours:  cfg.OvertimeThresholdHours,
		OvertimeHours: totalHours - cfg.OvertimeThresholdHours,
		TotalHours:    totalHours,
	}
}

// ReconcileEntry recomputes a stored entry's derived hour fields against the
// current settings, reporting whether the row had drifted. Only Work entries
// with both times are recomputed: hours on status days are status-determined,
// and their synthetic times must never overwrite the credited default.
func (e *Engine) ReconcileEntry(entry timesheet.Entry, cfg timesheet.Settings) (timesheet.Entry, bool) {
	if entry.Status != timesheet.StatusWork {
		return entry, false
	}
	if entry.StartTime == nil || entry.EndTime == nil {
		return entry, false
	}

	split := e.Split(entry.StartTime, entry.EndTime, entry.BreakMinutes, cfg)
	if split.RegularHours == entry.RegularHours &&
		split.OvertimeHours == entry.OvertimeHours &&
		split.TotalHours == entry.TotalHours {
		return entry, false
	}

	entry.RegularHours = split.RegularHours
	entry.OvertimeHours = split.OvertimeHours
	entry.TotalHours = split.TotalHours
	return entry, true
}
