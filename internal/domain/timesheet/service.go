package timesheet

import "context"

// TimesheetService exposes the day level operations backing the timesheet
// grid plus the calendar and settings resources around it.
type TimesheetService interface {
	// ResolveMonth returns the fully resolved grid for a month. When
	// employeeID is non-empty the grid is limited to that employee.
	ResolveMonth(ctx context.Context, employeeID string, year, month int) ([]ResolvedDayResponse, error)

	SetStatus(ctx context.Context, req SetStatusRequest) (ResolvedDayResponse, error)
	SetTime(ctx context.Context, req SetTimeRequest) (ResolvedDayResponse, error)
	ToggleHoliday(ctx context.Context, req ToggleHolidayRequest) (bool, error)
	BulkShift(ctx context.Context, req BulkShiftRequest) ([]EntryResponse, error)

	ListEntries(ctx context.Context, filter EntryFilter) ([]EntryResponse, int64, error)
	ListHolidays(ctx context.Context, startDate, endDate string) ([]HolidayResponse, error)
	ListLeaveDays(ctx context.Context, employeeID, startDate, endDate string) ([]LeaveDayResponse, error)

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// ReconcileDerivedHours recomputes the stored hour breakdown of every
	// Work entry against the current settings and rewrites the rows that
	// drifted. Status-day entries keep their credited default hours. It
	// returns the number of entries rewritten.
	ReconcileDerivedHours(ctx context.Context) (int, error)
}

// ReportService produces the monthly payroll report.
type ReportService interface {
	MonthlyReport(ctx context.Context, year, month int, department string) (MonthlyReportResponse, error)
}
