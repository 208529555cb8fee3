package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) timesheet.EntryRepository {
	return &entryRepository{db: db}
}

// Upsert implements timesheet.EntryRepository.
func (r *entryRepository) Upsert(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_entries (
			id, employee_id, date, start_time, end_time, break_minutes,
			regular_hours, overtime_hours, holiday_overtime_hours, total_hours, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_minutes = EXCLUDED.break_minutes,
			regular_hours = EXCLUDED.regular_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			holiday_overtime_hours = EXCLUDED.holiday_overtime_hours,
			total_hours = EXCLUDED.total_hours,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.BreakMinutes,
		entry.RegularHours,
		entry.OvertimeHours,
		entry.HolidayOvertimeHours,
		entry.TotalHours,
		entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return timesheet.Entry{}, fmt.Errorf("failed to upsert timesheet entry: %w", err)
	}

	return entry, nil
}

// GetByEmployeeAndDate implements timesheet.EntryRepository.
func (r *entryRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, break_minutes,
			   regular_hours, overtime_hours, holiday_overtime_hours, total_hours,
			   status, created_at, updated_at
		FROM timesheet_entries
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var entry timesheet.Entry
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.StartTime, &entry.EndTime, &entry.BreakMinutes,
		&entry.RegularHours, &entry.OvertimeHours, &entry.HolidayOvertimeHours, &entry.TotalHours,
		&entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no entry recorded for this pair
		}
		return nil, fmt.Errorf("failed to get timesheet entry: %w", err)
	}

	return &entry, nil
}

// List implements timesheet.EntryRepository.
func (r *entryRepository) List(ctx context.Context, filter timesheet.EntryFilter) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Department != nil && *filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND t.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND t.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			t.id, t.employee_id, t.date, t.start_time, t.end_time, t.break_minutes,
			t.regular_hours, t.overtime_hours, t.holiday_overtime_hours, t.total_hours,
			t.status, t.created_at, t.updated_at,
			e.full_name AS employee_name
		FROM timesheet_entries t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE %s
		ORDER BY t.date ASC, e.full_name ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var entry timesheet.Entry
		if err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.StartTime, &entry.EndTime, &entry.BreakMinutes,
			&entry.RegularHours, &entry.OvertimeHours, &entry.HolidayOvertimeHours, &entry.TotalHours,
			&entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
			&entry.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListByDateRange implements timesheet.EntryRepository.
func (r *entryRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]timesheet.Entry, error) {
	return r.List(ctx, timesheet.EntryFilter{StartDate: &startDate, EndDate: &endDate})
}

// DeleteByEmployeeAndDate implements timesheet.EntryRepository.
func (r *entryRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID, date string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE employee_id = $1 AND date = $2`, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entry: %w", err)
	}

	return nil
}

// DeleteByEmployee implements timesheet.EntryRepository.
func (r *entryRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entries for employee: %w", err)
	}

	return nil
}
