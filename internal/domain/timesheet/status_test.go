package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusWork, StatusLeave, StatusOff, StatusAbsent, StatusHoliday} {
		assert.True(t, status.Valid(), "status %q should be valid", status)
	}

	assert.False(t, Status("vacation").Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("Work").Valid(), "statuses are case sensitive")
}

func TestStatusDefaultHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, StatusWork.DefaultHours())
	assert.Equal(t, 0.0, StatusAbsent.DefaultHours())
	assert.Equal(t, 8.0, StatusLeave.DefaultHours())
	assert.Equal(t, 8.0, StatusOff.DefaultHours())
	assert.Equal(t, 8.0, StatusHoliday.DefaultHours())
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Leave", StatusLeave.Label())
	assert.Equal(t, "Work", StatusWork.Label())

	// Unknown statuses fall back to their raw value.
	assert.Equal(t, "vacation", Status("vacation").Label())
}
