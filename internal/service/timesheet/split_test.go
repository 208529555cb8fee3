package timesheet

import (
	"testing"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_OvertimeBoundary(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := timesheet.DefaultSettings()

	// 08:00-18:00 with a 60m break is 9 worked hours against an 8h threshold
	split := e.Split(strPtr("08:00"), strPtr("18:00"), 60, cfg)

	assert.Equal(t, 9.0, split.TotalHours)
	assert.Equal(t, 8.0, split.RegularHours)
	assert.Equal(t, 1.0, split.OvertimeHours)
	assert.Equal(t, 0.0, split.HolidayOvertimeHours)
}

func TestSplit_OvertimeDisabled(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := timesheet.DefaultSettings()
	cfg.AutoOvertimeEnabled = false

	split := e.Split(strPtr("08:00"), strPtr("18:00"), 60, cfg)

	assert.Equal(t, 9.0, split.TotalHours)
	assert.Equal(t, 9.0, split.RegularHours)
	assert.Equal(t, 0.0, split.OvertimeHours)
}

func TestSplit_BreakLongerThanShiftClampsToZero(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	split := e.Split(strPtr("09:00"), strPtr("10:00"), 120, timesheet.DefaultSettings())

	assert.Equal(t, timesheet.HourSplit{}, split)
}

func TestSplit_MissingOrMalformedTimes(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := timesheet.DefaultSettings()

	assert.Equal(t, timesheet.HourSplit{}, e.Split(nil, strPtr("17:00"), 60, cfg))
	assert.Equal(t, timesheet.HourSplit{}, e.Split(strPtr("09:00"), nil, 60, cfg))
	assert.Equal(t, timesheet.HourSplit{}, e.Split(strPtr("9am"), strPtr("17:00"), 60, cfg))
}

func TestSplit_OvernightShift(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	// 22:00-06:00 is 8 hours, minus a 30m break
	split := e.Split(strPtr("22:00"), strPtr("06:00"), 30, timesheet.DefaultSettings())

	assert.Equal(t, 7.5, split.TotalHours)
	assert.Equal(t, 7.5, split.RegularHours)
	assert.Equal(t, 0.0, split.OvertimeHours)
}

func TestSplit_ExactlyAtThresholdIsAllRegular(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	split := e.Split(strPtr("09:00"), strPtr("18:00"), 60, timesheet.DefaultSettings())

	assert.Equal(t, 8.0, split.TotalHours)
	assert.Equal(t, 8.0, split.RegularHours)
	assert.Equal(t, 0.0, split.OvertimeHours)
}

func TestSplit_ThresholdChangeRecomputesFromRawTimes(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	cfg := timesheet.DefaultSettings()

	before := e.Split(strPtr("08:00"), strPtr("18:00"), 60, cfg)
	assert.Equal(t, 1.0, before.OvertimeHours)

	cfg.OvertimeThresholdHours = 6
	after := e.Split(strPtr("08:00"), strPtr("18:00"), 60, cfg)
	assert.Equal(t, 6.0, after.RegularHours)
	assert.Equal(t, 3.0, after.OvertimeHours)
}

func TestReconcileEntry_LeavesStatusDayEntriesAlone(t *testing.T) {
	t.Parallel()
	e := NewEngine()
	rec := testRecords(testEmployee("e1", "20"))

	_, err := e.SetStatus(rec, "e1", "2026-06-01", timesheet.StatusLeave)
	require.NoError(t, err)

	entry := rec.Entries[DayKey{EmployeeID: "e1", Date: "2026-06-01"}]
	require.Equal(t, 8.0, entry.RegularHours)

	// The synthetic 09:00-17:00/60m times would split to 7h; the credited
	// default has to survive reconciliation regardless.
	updated, drifted := e.ReconcileEntry(entry, timesheet.DefaultSettings())

	assert.False(t, drifted)
	assert.Equal(t, 8.0, updated.RegularHours)
	assert.Equal(t, 8.0, updated.TotalHours)
}

func TestReconcileEntry_RewritesDriftedWorkEntry(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	// Stored under a 9h threshold, read back under the 8h default.
	entry := timesheet.Entry{
		EmployeeID:   "e1",
		Date:         "2026-06-01",
		StartTime:    strPtr("08:00"),
		EndTime:      strPtr("18:00"),
		BreakMinutes: 60,
		RegularHours: 9,
		TotalHours:   9,
		Status:       timesheet.StatusWork,
	}

	updated, drifted := e.ReconcileEntry(entry, timesheet.DefaultSettings())
	require.True(t, drifted)
	assert.Equal(t, 8.0, updated.RegularHours)
	assert.Equal(t, 1.0, updated.OvertimeHours)
	assert.Equal(t, 9.0, updated.TotalHours)

	// A clean row is reported as such on the next pass.
	_, drifted = e.ReconcileEntry(updated, timesheet.DefaultSettings())
	assert.False(t, drifted)
}

func TestReconcileEntry_SkipsEntriesWithoutBothTimes(t *testing.T) {
	t.Parallel()
	e := NewEngine()

	entry := timesheet.Entry{
		EmployeeID:   "e1",
		Date:         "2026-06-01",
		StartTime:    strPtr("08:00"),
		RegularHours: 4,
		TotalHours:   4,
		Status:       timesheet.StatusWork,
	}

	updated, drifted := e.ReconcileEntry(entry, timesheet.DefaultSettings())
	assert.False(t, drifted)
	assert.Equal(t, 4.0, updated.RegularHours)
}
