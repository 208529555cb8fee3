package timesheet

import (
	"testing"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(id string, rate string) employee.Employee {
	return employee.Employee{
		ID:         id,
		FullName:   "Test Employee " + id,
		Department: "Maintenance",
		HourlyRate: decimal.RequireFromString(rate),
	}
}

func testRecords(emps ...employee.Employee) *Records {
	return NewRecords(emps, nil, nil, nil)
}

func TestResolveDay_NothingRecorded(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	resolved := e.ResolveDay("e1", "2026-06-01", rec, timesheet.DefaultSettings())

	assert.Equal(t, timesheet.StatusWork, resolved.Status)
	assert.Nil(t, resolved.StartTime)
	assert.Nil(t, resolved.EndTime)
	assert.Equal(t, 0.0, resolved.TotalHours)
}

func TestResolveDay_EntryRecomputedThroughSplitter(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		[]timesheet.Entry{{
			EmployeeID:   "e1",
			Date:         "2026-06-01",
			StartTime:    strPtr("08:00"),
			EndTime:      strPtr("18:00"),
			BreakMinutes: 60,
			// Stale derived fields must be ignored
			RegularHours: 99,
			TotalHours:   99,
			Status:       timesheet.StatusWork,
		}},
		nil, nil,
	)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, timesheet.DefaultSettings())

	assert.Equal(t, timesheet.StatusWork, resolved.Status)
	assert.Equal(t, 9.0, resolved.TotalHours)
	assert.Equal(t, 8.0, resolved.RegularHours)
	assert.Equal(t, 1.0, resolved.OvertimeHours)
}

func TestResolveDay_LeaveOverrideBeatsHolidayCalendar(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		nil,
		[]timesheet.LeaveDay{{EmployeeID: "e1", Date: "2026-06-01", Status: timesheet.StatusLeave}},
		[]timesheet.Holiday{{Date: "2026-06-01", Name: "Public Holiday"}},
	)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, timesheet.DefaultSettings())

	assert.Equal(t, timesheet.StatusLeave, resolved.Status)
	assert.Equal(t, 8.0, resolved.RegularHours)
	assert.Equal(t, 8.0, resolved.TotalHours)
	require.NotNil(t, resolved.StartTime)
	assert.Equal(t, "09:00", *resolved.StartTime)
}

func TestResolveDay_AbsentOverrideHasZeroHours(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		nil,
		[]timesheet.LeaveDay{{EmployeeID: "e1", Date: "2026-06-01", Status: timesheet.StatusAbsent}},
		nil,
	)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, timesheet.DefaultSettings())

	assert.Equal(t, timesheet.StatusAbsent, resolved.Status)
	assert.Equal(t, 0.0, resolved.TotalHours)
	assert.Nil(t, resolved.StartTime)
}

func TestResolveDay_HolidayWithNothingLoggedIsZeroHours(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		nil, nil,
		[]timesheet.Holiday{{Date: "2026-06-01", Name: "Public Holiday"}},
	)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, timesheet.DefaultSettings())

	assert.Equal(t, timesheet.StatusHoliday, resolved.Status)
	assert.Equal(t, 0.0, resolved.TotalHours)
}

func TestResolveDay_EntryOnHolidayEarnsOrdinaryHours(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		[]timesheet.Entry{{
			EmployeeID:   "e1",
			Date:         "2026-06-01",
			StartTime:    strPtr("09:00"),
			EndTime:      strPtr("17:00"),
			BreakMinutes: 60,
			Status:       timesheet.StatusWork,
		}},
		nil,
		[]timesheet.Holiday{{Date: "2026-06-01", Name: "Public Holiday"}},
	)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, timesheet.DefaultSettings())

	// Worked holiday without an override: ordinary splitter rules, no premium
	assert.Equal(t, timesheet.StatusWork, resolved.Status)
	assert.Equal(t, 7.0, resolved.RegularHours)
	assert.Equal(t, 0.0, resolved.HolidayOvertimeHours)
}

func TestResolveDay_Idempotent(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		[]timesheet.Entry{{
			EmployeeID:   "e1",
			Date:         "2026-06-01",
			StartTime:    strPtr("22:00"),
			EndTime:      strPtr("06:00"),
			BreakMinutes: 30,
			Status:       timesheet.StatusWork,
		}},
		[]timesheet.LeaveDay{{EmployeeID: "e1", Date: "2026-06-02", Status: timesheet.StatusOff}},
		[]timesheet.Holiday{{Date: "2026-06-03", Name: "Public Holiday"}},
	)
	cfg := timesheet.DefaultSettings()

	for _, date := range []string{"2026-06-01", "2026-06-02", "2026-06-03", "2026-06-04"} {
		first := e.ResolveDay("e1", date, rec, cfg)
		second := e.ResolveDay("e1", date, rec, cfg)
		assert.Equal(t, first, second, "resolution for %s drifted between calls", date)
	}
}

func TestSetStatus_NonWorkCreatesOverrideAndSyntheticEntry(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	changes, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusLeave)
	require.NoError(t, err)

	require.Len(t, changes.UpsertLeaveDays, 1)
	require.Len(t, changes.UpsertEntries, 1)

	entry := changes.UpsertEntries[0]
	assert.Equal(t, "09:00", *entry.StartTime)
	assert.Equal(t, "17:00", *entry.EndTime)
	assert.Equal(t, 60, entry.BreakMinutes)
	assert.Equal(t, 8.0, entry.RegularHours)
	assert.Equal(t, 8.0, entry.TotalHours)
	assert.Equal(t, timesheet.StatusLeave, entry.Status)
}

func TestSetStatus_AbsentCreatesNoSyntheticEntry(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	changes, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusAbsent)
	require.NoError(t, err)

	assert.Len(t, changes.UpsertLeaveDays, 1)
	assert.Empty(t, changes.UpsertEntries)
}

func TestSetStatus_LeaveToAbsentDropsSyntheticEntry(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))
	cfg := timesheet.DefaultSettings()

	_, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusLeave)
	require.NoError(t, err)

	key := DayKey{EmployeeID: "e1", Date: "2026-06-01"}
	_, hasEntry := rec.Entries[key]
	require.True(t, hasEntry)

	changes, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusAbsent)
	require.NoError(t, err)

	// The leave day's 8h synthetic entry must not survive as an orphan.
	assert.Len(t, changes.DeleteEntries, 1)
	_, hasEntry = rec.Entries[key]
	assert.False(t, hasEntry)

	require.Len(t, changes.UpsertLeaveDays, 1)
	assert.Equal(t, timesheet.StatusAbsent, changes.UpsertLeaveDays[0].Status)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, cfg)
	assert.Equal(t, timesheet.StatusAbsent, resolved.Status)
	assert.Equal(t, 0.0, resolved.TotalHours)
}

func TestSetStatus_WorkResetsDayCompletely(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))
	cfg := timesheet.DefaultSettings()

	_, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusLeave)
	require.NoError(t, err)

	changes, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusWork)
	require.NoError(t, err)

	assert.Len(t, changes.DeleteLeaveDays, 1)
	assert.Len(t, changes.DeleteEntries, 1)

	key := DayKey{EmployeeID: "e1", Date: "2026-06-01"}
	_, hasLeave := rec.LeaveDays[key]
	_, hasEntry := rec.Entries[key]
	assert.False(t, hasLeave)
	assert.False(t, hasEntry)

	resolved := e.ResolveDay("e1", "2026-06-01", rec, cfg)
	assert.Equal(t, timesheet.StatusWork, resolved.Status)
	assert.Equal(t, 0.0, resolved.TotalHours)
	assert.Nil(t, resolved.StartTime)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	_, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.Status("vacationing"))
	assert.ErrorIs(t, err, timesheet.ErrInvalidStatus)
}

func TestSetTime_RecomputesHoursOnceBothTimesPresent(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))
	cfg := timesheet.DefaultSettings()

	changes, err := e.SetTime(rec, "e1", "2026-06-01", timesheet.FieldStartTime, "08:00", cfg)
	require.NoError(t, err)
	require.Len(t, changes.UpsertEntries, 1)
	assert.Equal(t, 0.0, changes.UpsertEntries[0].TotalHours)

	changes, err = e.SetTime(rec, "e1", "2026-06-01", timesheet.FieldEndTime, "18:00", cfg)
	require.NoError(t, err)
	require.Len(t, changes.UpsertEntries, 1)

	entry := changes.UpsertEntries[0]
	assert.Equal(t, 9.0, entry.TotalHours) // default 60m break applied
	assert.Equal(t, 8.0, entry.RegularHours)
	assert.Equal(t, 1.0, entry.OvertimeHours)
}

func TestSetTime_UnknownEmployee(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	_, err := e.SetTime(rec, "ghost", "2026-06-01", timesheet.FieldStartTime, "08:00", timesheet.DefaultSettings())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSetTime_NoOpOnNonWorkDay(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))
	cfg := timesheet.DefaultSettings()

	_, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusLeave)
	require.NoError(t, err)

	changes, err := e.SetTime(rec, "e1", "2026-06-01", timesheet.FieldStartTime, "07:00", cfg)
	require.NoError(t, err)
	assert.True(t, changes.Empty())

	// The synthetic leave entry keeps its status-determined hours
	resolved := e.ResolveDay("e1", "2026-06-01", rec, cfg)
	assert.Equal(t, "09:00", *resolved.StartTime)
	assert.Equal(t, 8.0, resolved.TotalHours)
}

func TestSetTime_NoOpOnEmptyHolidayDay(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		nil, nil,
		[]timesheet.Holiday{{Date: "2026-06-01", Name: "Public Holiday"}},
	)

	changes, err := e.SetTime(rec, "e1", "2026-06-01", timesheet.FieldStartTime, "08:00", timesheet.DefaultSettings())
	require.NoError(t, err)
	assert.True(t, changes.Empty())
}

func TestToggleHoliday(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	changes := e.ToggleHoliday(rec, "2026-06-01", "Public Holiday")
	require.Len(t, changes.AddHolidays, 1)
	assert.Equal(t, "Public Holiday", changes.AddHolidays[0].Name)

	changes = e.ToggleHoliday(rec, "2026-06-01", "")
	require.Len(t, changes.RemoveHolidays, 1)
	_, exists := rec.Holidays["2026-06-01"]
	assert.False(t, exists)
}
