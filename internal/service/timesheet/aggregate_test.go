package timesheet

import (
	"testing"
	"time"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTotals_PayFormula(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	// One June 2026 day: 10 worked hours splits into 8 regular + 2 overtime,
	// with 3 holiday-overtime hours carried on the entry.
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		[]timesheet.Entry{{
			EmployeeID:           "e1",
			Date:                 "2026-06-03",
			StartTime:            strPtr("08:00"),
			EndTime:              strPtr("19:00"),
			BreakMinutes:         60,
			HolidayOvertimeHours: 3,
			Status:               timesheet.StatusWork,
		}},
		nil, nil,
	)

	totals, err := e.MonthlyTotals("e1", 2026, time.June, rec, timesheet.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 8.0, totals.TotalRegular)
	assert.Equal(t, 2.0, totals.TotalOvertime)
	assert.Equal(t, 3.0, totals.TotalHolidayOvertime)
	assert.Equal(t, 1, totals.TotalDaysWorked)

	// 8*20 + 2*20*1.5 + 3*20*2.0 = 160 + 60 + 120
	assert.Equal(t, "340", totals.TotalPay.String())
}

func TestMonthlyTotals_CountsDefaultHourDays(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "10"))
	cfg := timesheet.DefaultSettings()

	_, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusLeave)
	require.NoError(t, err)
	_, err = e.SetStatus(rec, "e1", "2026-06-02", timesheet.StatusAbsent)
	require.NoError(t, err)

	totals, err := e.MonthlyTotals("e1", 2026, time.June, rec, cfg)
	require.NoError(t, err)

	assert.Equal(t, 8.0, totals.TotalRegular)
	assert.Equal(t, 1, totals.TotalDaysWorked) // absent day has zero hours
	assert.Equal(t, "80", totals.TotalPay.String())
}

func TestMonthlyTotals_UnknownEmployee(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	_, err := e.MonthlyTotals("ghost", 2026, time.June, rec, timesheet.DefaultSettings())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthlyTotals_ConfigChangeShiftsSplitRetroactively(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20")},
		[]timesheet.Entry{{
			EmployeeID:   "e1",
			Date:         "2026-06-03",
			StartTime:    strPtr("08:00"),
			EndTime:      strPtr("18:00"),
			BreakMinutes: 60,
			Status:       timesheet.StatusWork,
		}},
		nil, nil,
	)

	cfg := timesheet.DefaultSettings()
	before, err := e.MonthlyTotals("e1", 2026, time.June, rec, cfg)
	require.NoError(t, err)
	assert.Equal(t, 8.0, before.TotalRegular)
	assert.Equal(t, 1.0, before.TotalOvertime)

	cfg.OvertimeThresholdHours = 9
	after, err := e.MonthlyTotals("e1", 2026, time.June, rec, cfg)
	require.NoError(t, err)
	assert.Equal(t, 9.0, after.TotalRegular)
	assert.Equal(t, 0.0, after.TotalOvertime)
}

func TestOrganizationTotals_PointwiseSum(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := NewRecords(
		[]employee.Employee{testEmployee("e1", "20"), testEmployee("e2", "30")},
		[]timesheet.Entry{
			{
				EmployeeID:   "e1",
				Date:         "2026-06-03",
				StartTime:    strPtr("09:00"),
				EndTime:      strPtr("18:00"),
				BreakMinutes: 60,
				Status:       timesheet.StatusWork,
			},
			{
				EmployeeID:   "e2",
				Date:         "2026-06-03",
				StartTime:    strPtr("09:00"),
				EndTime:      strPtr("14:00"),
				BreakMinutes: 0,
				Status:       timesheet.StatusWork,
			},
		},
		nil, nil,
	)

	org, err := e.OrganizationTotals([]string{"e1", "e2"}, 2026, time.June, rec, timesheet.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 13.0, org.TotalHours)
	assert.Equal(t, 2, org.TotalDaysWorked)
	// 8*20 + 5*30
	assert.Equal(t, "310", org.TotalPay.String())
}

func TestApplyShiftToRange_WeekdaysOnly(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))
	shift := ShiftPreset{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 60}

	// 2026-06-01 is a Monday; the range covers one Saturday and one Sunday.
	changes, err := e.ApplyShiftToRange(rec, "e1", "2026-06-01", "2026-06-07", shift, timesheet.DefaultSettings())
	require.NoError(t, err)

	require.Len(t, changes.UpsertEntries, 5)
	for _, entry := range changes.UpsertEntries {
		day, parseErr := time.Parse("2006-01-02", entry.Date)
		require.NoError(t, parseErr)
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
		assert.Equal(t, "09:00", *entry.StartTime)
		assert.Equal(t, "17:00", *entry.EndTime)
		assert.Equal(t, 7.0, entry.TotalHours)
	}

	_, hasSaturday := rec.Entries[DayKey{EmployeeID: "e1", Date: "2026-06-06"}]
	_, hasSunday := rec.Entries[DayKey{EmployeeID: "e1", Date: "2026-06-07"}]
	assert.False(t, hasSaturday)
	assert.False(t, hasSunday)
}

func TestApplyShiftToRange_SkipsOverriddenDays(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))
	cfg := timesheet.DefaultSettings()

	_, err := e.SetStatus(rec, "e1", "2026-06-02", timesheet.StatusLeave)
	require.NoError(t, err)

	shift := ShiftPreset{StartTime: "08:00", EndTime: "16:00", BreakMinutes: 30}
	changes, err := e.ApplyShiftToRange(rec, "e1", "2026-06-01", "2026-06-05", shift, cfg)
	require.NoError(t, err)

	// Tuesday keeps its leave override, the other four weekdays are filled
	require.Len(t, changes.UpsertEntries, 4)
	for _, entry := range changes.UpsertEntries {
		assert.NotEqual(t, "2026-06-02", entry.Date)
	}

	resolved := e.ResolveDay("e1", "2026-06-02", rec, cfg)
	assert.Equal(t, timesheet.StatusLeave, resolved.Status)
}

func TestApplyShiftToRange_UnknownEmployee(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	_, err := e.ApplyShiftToRange(rec, "ghost", "2026-06-01", "2026-06-05", ShiftPreset{StartTime: "09:00", EndTime: "17:00"}, timesheet.DefaultSettings())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApplyShiftToRange_BreakMinutesApplied(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	shift := ShiftPreset{StartTime: "09:00", EndTime: "17:00", BreakMinutes: 90}
	changes, err := e.ApplyShiftToRange(rec, "e1", "2026-06-01", "2026-06-01", shift, timesheet.DefaultSettings())
	require.NoError(t, err)

	require.Len(t, changes.UpsertEntries, 1)
	entry := changes.UpsertEntries[0]
	assert.Equal(t, 90, entry.BreakMinutes)
	assert.Equal(t, 6.5, entry.TotalHours)
}
