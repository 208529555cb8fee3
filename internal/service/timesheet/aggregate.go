package timesheet

import (
	"strconv"
	"time"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// Overtime pays a fixed premium; only the holiday multiplier is
// configurable.
var overtimeRateMultiplier = decimal.NewFromFloat(1.5)

// MonthlyTotals resolves every day of the month for one employee and sums
// the results. An employee id with no backing record is refused: there is
// no rate to apply.
func (e *Engine) MonthlyTotals(employeeID string, year int, month time.Month, rec *Records, cfg timesheet.Settings) (timesheet.MonthlyTotals, error) {
	emp, ok := rec.Employees[employeeID]
	if !ok {
		return timesheet.MonthlyTotals{}, employee.ErrEmployeeNotFound
	}

	totals := timesheet.MonthlyTotals{EmployeeID: employeeID}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		resolved := e.ResolveDay(employeeID, day.Format("2006-01-02"), rec, cfg)

		totals.TotalRegular += resolved.RegularHours
		totals.TotalOvertime += resolved.OvertimeHours
		totals.TotalHolidayOvertime += resolved.HolidayOvertimeHours
		totals.TotalHours += resolved.TotalHours
		if resolved.TotalHours > 0 {
			totals.TotalDaysWorked++
		}
	}

	rate := emp.HourlyRate
	regularPay := decimal.NewFromFloat(totals.TotalRegular).Mul(rate)
	overtimePay := decimal.NewFromFloat(totals.TotalOvertime).Mul(rate).Mul(overtimeRateMultiplier)
	holidayPay := decimal.NewFromFloat(totals.TotalHolidayOvertime).Mul(rate).
		Mul(decimal.NewFromFloat(cfg.HolidayOvertimeRateMultiplier))
	totals.TotalPay = regularPay.Add(overtimePay).Add(holidayPay)

	return totals, nil
}

// OrganizationTotals sums per-employee monthly totals pointwise across the
// given employee set. Filtering happens upstream: whatever list arrives is
// what gets summed.
func (e *Engine) OrganizationTotals(employeeIDs []string, year int, month time.Month, rec *Records, cfg timesheet.Settings) (timesheet.MonthlyTotals, error) {
	var org timesheet.MonthlyTotals
	org.TotalPay = decimal.Zero

	for _, id := range employeeIDs {
		totals, err := e.MonthlyTotals(id, year, month, rec, cfg)
		if err != nil {
			return timesheet.MonthlyTotals{}, err
		}

		org.TotalRegular += totals.TotalRegular
		org.TotalOvertime += totals.TotalOvertime
		org.TotalHolidayOvertime += totals.TotalHolidayOvertime
		org.TotalHours += totals.TotalHours
		org.TotalDaysWorked += totals.TotalDaysWorked
		org.TotalPay = org.TotalPay.Add(totals.TotalPay)
	}

	return org, nil
}

// ApplyShiftToRange stamps the shift preset onto every weekday in
// [startDate, endDate] inclusive, equivalent to filling each cell by hand.
// Saturdays and Sundays are always skipped, and days carrying an override
// keep it: SetTime no-ops there. The returned change set holds the final
// state of every entry the sweep actually touched.
func (e *Engine) ApplyShiftToRange(rec *Records, employeeID, startDate, endDate string, shift ShiftPreset, cfg timesheet.Settings) (ChangeSet, error) {
	if _, ok := rec.Employees[employeeID]; !ok {
		return ChangeSet{}, employee.ErrEmployeeNotFound
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return ChangeSet{}, timesheet.ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return ChangeSet{}, timesheet.ErrInvalidDate
	}

	var changes ChangeSet
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		date := day.Format("2006-01-02")
		touched := false

		fields := []struct {
			field timesheet.DayField
			value string
		}{
			{timesheet.FieldStartTime, shift.StartTime},
			{timesheet.FieldEndTime, shift.EndTime},
			{timesheet.FieldBreakMinutes, strconv.Itoa(shift.BreakMinutes)},
		}
		for _, f := range fields {
			cs, err := e.SetTime(rec, employeeID, date, f.field, f.value, cfg)
			if err != nil {
				return ChangeSet{}, err
			}
			if !cs.Empty() {
				touched = true
			}
		}

		if touched {
			changes.UpsertEntries = append(changes.UpsertEntries, rec.Entries[DayKey{EmployeeID: employeeID, Date: date}])
		}
	}

	return changes, nil
}
