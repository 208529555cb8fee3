package timesheet

import (
	"strconv"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
)

// Synthetic times stamped onto non-work days that credit default hours.
const (
	syntheticStart        = "09:00"
	syntheticEnd          = "17:00"
	syntheticBreakMinutes = 60
)

func strPtr(s string) *string {
	return &s
}

// ResolveDay determines the effective status and hours payload for one
// (employee, date) pair by overlaying the three record sets.
//
// Precedence, highest first:
//  1. A LeaveDay override wins over everything, including the holiday
//     calendar: pre-approved leave landing on a public holiday is recorded
//     as leave.
//  2. A holiday calendar date with nothing logged resolves to Holiday with
//     zero hours. An explicit entry on a holiday date falls through to
//     rule 3 and earns ordinary splitter hours, no premium.
//  3. An entry resolves to its own status with hours recomputed from its
//     raw times against the current settings.
//  4. Nothing recorded: Work status, all fields empty.
func (e *Engine) ResolveDay(employeeID, date string, rec *Records, cfg timesheet.Settings) timesheet.ResolvedDay {
	key := DayKey{EmployeeID: employeeID, Date: date}

	if ld, ok := rec.LeaveDays[key]; ok {
		resolved := timesheet.ResolvedDay{
			EmployeeID: employeeID,
			Date:       date,
			Status:     ld.Status,
		}
		if defaultHours := ld.Status.DefaultHours(); defaultHours > 0 {
			resolved.StartTime = strPtr(syntheticStart)
			resolved.EndTime = strPtr(syntheticEnd)
			resolved.BreakMinutes = syntheticBreakMinutes
			resolved.RegularHours = defaultHours
			resolved.TotalHours = defaultHours
		}
		return resolved
	}

	entry, hasEntry := rec.Entries[key]

	if _, isHoliday := rec.Holidays[date]; isHoliday && !hasEntry {
		return timesheet.ResolvedDay{
			EmployeeID: employeeID,
			Date:       date,
			Status:     timesheet.StatusHoliday,
		}
	}

	if hasEntry {
		status := entry.Status
		if !status.Valid() {
			status = timesheet.StatusWork
		}
		split := e.Split(entry.StartTime, entry.EndTime, entry.BreakMinutes, cfg)
		return timesheet.ResolvedDay{
			EmployeeID:           employeeID,
			Date:                 date,
			Status:               status,
			StartTime:            entry.StartTime,
			EndTime:              entry.EndTime,
			BreakMinutes:         entry.BreakMinutes,
			RegularHours:         split.RegularHours,
			OvertimeHours:        split.OvertimeHours,
			HolidayOvertimeHours: entry.HolidayOvertimeHours,
			TotalHours:           split.TotalHours,
		}
	}

	return timesheet.ResolvedDay{
		EmployeeID: employeeID,
		Date:       date,
		Status:     timesheet.StatusWork,
	}
}

// SetStatus records a day-status edit. Setting Work reverts the day to
// "nothing recorded": both the override and any entry for the pair are
// removed. Any other status creates or replaces the override, plus a
// synthetic entry carrying the status's default hours when those are
// non-zero, so aggregation has concrete numbers to sum. A zero-default
// status instead removes any entry for the pair, so switching Leave to
// Absent cannot leave an orphaned 8h row behind.
func (e *Engine) SetStatus(rec *Records, employeeID, date string, status timesheet.Status) (ChangeSet, error) {
	if !status.Valid() {
		return ChangeSet{}, timesheet.ErrInvalidStatus
	}

	key := DayKey{EmployeeID: employeeID, Date: date}
	var changes ChangeSet

	if status == timesheet.StatusWork {
		if _, ok := rec.LeaveDays[key]; ok {
			delete(rec.LeaveDays, key)
			changes.DeleteLeaveDays = append(changes.DeleteLeaveDays, key)
		}
		if _, ok := rec.Entries[key]; ok {
			delete(rec.Entries, key)
			changes.DeleteEntries = append(changes.DeleteEntries, key)
		}
		return changes, nil
	}

	ld := timesheet.LeaveDay{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	if existing, ok := rec.LeaveDays[key]; ok {
		ld.ID = existing.ID
		ld.CreatedAt = existing.CreatedAt
	}
	rec.LeaveDays[key] = ld
	changes.UpsertLeaveDays = append(changes.UpsertLeaveDays, ld)

	if defaultHours := status.DefaultHours(); defaultHours > 0 {
		entry := timesheet.Entry{
			EmployeeID:   employeeID,
			Date:         date,
			StartTime:    strPtr(syntheticStart),
			EndTime:      strPtr(syntheticEnd),
			BreakMinutes: syntheticBreakMinutes,
			RegularHours: defaultHours,
			TotalHours:   defaultHours,
			Status:       status,
		}
		if existing, ok := rec.Entries[key]; ok {
			entry.ID = existing.ID
			entry.CreatedAt = existing.CreatedAt
		}
		rec.Entries[key] = entry
		changes.UpsertEntries = append(changes.UpsertEntries, entry)
	} else if _, ok := rec.Entries[key]; ok {
		// Zero-default status: a synthetic entry left over from a previous
		// status would keep reporting hours the override no longer credits.
		delete(rec.Entries, key)
		changes.DeleteEntries = append(changes.DeleteEntries, key)
	}

	return changes, nil
}

// SetTime records one cell edit (start time, end time or break) on the
// entry for a pair, then recomputes the stored hour split once both times
// are present. Editing a day whose resolved status is not Work is a no-op:
// those hours are status-determined, not time-determined.
//
// An employee id with no backing record is the one reportable condition:
// silently accepting it would make downstream pay totals miss that person.
func (e *Engine) SetTime(rec *Records, employeeID, date string, field timesheet.DayField, value string, cfg timesheet.Settings) (ChangeSet, error) {
	if _, ok := rec.Employees[employeeID]; !ok {
		return ChangeSet{}, employee.ErrEmployeeNotFound
	}

	resolved := e.ResolveDay(employeeID, date, rec, cfg)
	if resolved.Status != timesheet.StatusWork {
		return ChangeSet{}, nil
	}

	key := DayKey{EmployeeID: employeeID, Date: date}
	entry, ok := rec.Entries[key]
	if !ok {
		entry = timesheet.Entry{
			EmployeeID:   employeeID,
			Date:         date,
			BreakMinutes: syntheticBreakMinutes,
			Status:       timesheet.StatusWork,
		}
	}

	switch field {
	case timesheet.FieldStartTime:
		if value == "" {
			entry.StartTime = nil
		} else {
			entry.StartTime = strPtr(value)
		}
	case timesheet.FieldEndTime:
		if value == "" {
			entry.EndTime = nil
		} else {
			entry.EndTime = strPtr(value)
		}
	case timesheet.FieldBreakMinutes:
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 0 {
			minutes = 0
		}
		entry.BreakMinutes = minutes
	default:
		return ChangeSet{}, timesheet.ErrInvalidDayField
	}

	if entry.StartTime != nil && entry.EndTime != nil {
		split := e.Split(entry.StartTime, entry.EndTime, entry.BreakMinutes, cfg)
		entry.RegularHours = split.RegularHours
		entry.OvertimeHours = split.OvertimeHours
		entry.HolidayOvertimeHours = split.HolidayOvertimeHours
		entry.TotalHours = split.TotalHours
	} else {
		entry.RegularHours = 0
		entry.OvertimeHours = 0
		entry.HolidayOvertimeHours = 0
		entry.TotalHours = 0
	}

	rec.Entries[key] = entry

	return ChangeSet{UpsertEntries: []timesheet.Entry{entry}}, nil
}

// ToggleHoliday inserts or removes the organization-wide holiday for a
// date. Individual entries and overrides are left untouched.
func (e *Engine) ToggleHoliday(rec *Records, date, name string) ChangeSet {
	if _, ok := rec.Holidays[date]; ok {
		delete(rec.Holidays, date)
		return ChangeSet{RemoveHolidays: []string{date}}
	}

	holiday := timesheet.Holiday{
		Date: date,
		Name: name,
	}
	rec.Holidays[date] = holiday
	return ChangeSet{AddHolidays: []timesheet.Holiday{holiday}}
}
