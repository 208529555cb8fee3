package timesheet

import "context"

// EntryRepository defines data access methods for raw timesheet entries.
type EntryRepository interface {
	// Upsert inserts or replaces the entry for its (employee, date) pair
	Upsert(ctx context.Context, entry Entry) (Entry, error)

	// GetByEmployeeAndDate retrieves the entry for one pair, nil when absent
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Entry, error)

	// List retrieves entries with filters
	List(ctx context.Context, filter EntryFilter) ([]Entry, error)

	// ListByDateRange retrieves every entry in [startDate, endDate] inclusive
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]Entry, error)

	// DeleteByEmployeeAndDate removes the entry for one pair, if present
	DeleteByEmployeeAndDate(ctx context.Context, employeeID, date string) error

	// DeleteByEmployee removes every entry owned by an employee
	DeleteByEmployee(ctx context.Context, employeeID string) error
}

// LeaveDayRepository defines data access methods for leave-day overrides.
type LeaveDayRepository interface {
	// Upsert inserts or replaces the override for its (employee, date) pair
	Upsert(ctx context.Context, leaveDay LeaveDay) (LeaveDay, error)

	// ListByDateRange retrieves overrides in [startDate, endDate] inclusive,
	// optionally narrowed to one employee
	ListByDateRange(ctx context.Context, employeeID *string, startDate, endDate string) ([]LeaveDay, error)

	// DeleteByEmployeeAndDate removes the override for one pair, if present
	DeleteByEmployeeAndDate(ctx context.Context, employeeID, date string) error

	// DeleteByEmployee removes every override owned by an employee
	DeleteByEmployee(ctx context.Context, employeeID string) error
}

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// GetByDate retrieves the holiday for one date, nil when absent
	GetByDate(ctx context.Context, date string) (*Holiday, error)

	// ListByDateRange retrieves holidays in [startDate, endDate] inclusive
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]Holiday, error)

	DeleteByDate(ctx context.Context, date string) error
}

// SettingsRepository persists the single engine configuration row.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}
