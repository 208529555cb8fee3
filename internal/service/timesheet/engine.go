package timesheet

import (
	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
)

// DayKey addresses one (employee, date) pair. Date is YYYY-MM-DD.
type DayKey struct {
	EmployeeID string
	Date       string
}

// Records holds the in-memory collections the engine computes over. The
// caller owns them: it loads them from storage, hands them in, and persists
// the ChangeSet the engine returns. The engine itself performs no I/O.
type Records struct {
	Employees map[string]employee.Employee
	Entries   map[DayKey]timesheet.Entry
	LeaveDays map[DayKey]timesheet.LeaveDay
	Holidays  map[string]timesheet.Holiday // keyed by date
}

func NewRecords(
	employees []employee.Employee,
	entries []timesheet.Entry,
	leaveDays []timesheet.LeaveDay,
	holidays []timesheet.Holiday,
) *Records {
	rec := &Records{
		Employees: make(map[string]employee.Employee, len(employees)),
		Entries:   make(map[DayKey]timesheet.Entry, len(entries)),
		LeaveDays: make(map[DayKey]timesheet.LeaveDay, len(leaveDays)),
		Holidays:  make(map[string]timesheet.Holiday, len(holidays)),
	}
	for _, emp := range employees {
		rec.Employees[emp.ID] = emp
	}
	for _, entry := range entries {
		rec.Entries[DayKey{EmployeeID: entry.EmployeeID, Date: entry.Date}] = entry
	}
	for _, ld := range leaveDays {
		rec.LeaveDays[DayKey{EmployeeID: ld.EmployeeID, Date: ld.Date}] = ld
	}
	for _, h := range holidays {
		rec.Holidays[h.Date] = h
	}
	return rec
}

// ChangeSet lists the mutations a resolver operation requested. The engine
// applies them to its Records immediately; the caller is responsible for
// mirroring them into storage before the next load.
type ChangeSet struct {
	UpsertEntries   []timesheet.Entry
	DeleteEntries   []DayKey
	UpsertLeaveDays []timesheet.LeaveDay
	DeleteLeaveDays []DayKey
	AddHolidays     []timesheet.Holiday
	RemoveHolidays  []string
}

func (c *ChangeSet) Empty() bool {
	return len(c.UpsertEntries) == 0 &&
		len(c.DeleteEntries) == 0 &&
		len(c.UpsertLeaveDays) == 0 &&
		len(c.DeleteLeaveDays) == 0 &&
		len(c.AddHolidays) == 0 &&
		len(c.RemoveHolidays) == 0
}

// ShiftPreset carries the times a bulk application stamps onto each weekday.
type ShiftPreset struct {
	StartTime    string
	EndTime      string
	BreakMinutes int
}

// Engine is the timesheet computation engine. It is stateless: every method
// is a pure function of the Records, the arguments and the Settings passed
// in, so identical inputs always produce identical outputs.
type Engine struct {
}

func NewEngine() *Engine {
	return &Engine{}
}
