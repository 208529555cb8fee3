package postgresql

import (
	"context"
	"fmt"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/database"
)

type leaveDayRepository struct {
	db *database.DB
}

func NewLeaveDayRepository(db *database.DB) timesheet.LeaveDayRepository {
	return &leaveDayRepository{db: db}
}

// Upsert implements timesheet.LeaveDayRepository.
func (r *leaveDayRepository) Upsert(ctx context.Context, leaveDay timesheet.LeaveDay) (timesheet.LeaveDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_days (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		leaveDay.ID,
		leaveDay.EmployeeID,
		leaveDay.Date,
		leaveDay.Status,
	).Scan(&leaveDay.ID, &leaveDay.CreatedAt)

	if err != nil {
		return timesheet.LeaveDay{}, fmt.Errorf("failed to upsert leave day: %w", err)
	}

	return leaveDay, nil
}

// ListByDateRange implements timesheet.LeaveDayRepository.
func (r *leaveDayRepository) ListByDateRange(ctx context.Context, employeeID *string, startDate, endDate string) ([]timesheet.LeaveDay, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "date >= $1 AND date <= $2"
	args := []interface{}{startDate, endDate}

	if employeeID != nil && *employeeID != "" {
		baseWhere += " AND employee_id = $3"
		args = append(args, *employeeID)
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, date, status, created_at
		FROM leave_days
		WHERE %s
		ORDER BY date ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave days: %w", err)
	}
	defer rows.Close()

	var leaveDays []timesheet.LeaveDay
	for rows.Next() {
		var ld timesheet.LeaveDay
		if err := rows.Scan(&ld.ID, &ld.EmployeeID, &ld.Date, &ld.Status, &ld.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave day: %w", err)
		}
		leaveDays = append(leaveDays, ld)
	}

	return leaveDays, rows.Err()
}

// DeleteByEmployeeAndDate implements timesheet.LeaveDayRepository.
func (r *leaveDayRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID, date string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM leave_days WHERE employee_id = $1 AND date = $2`, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete leave day: %w", err)
	}

	return nil
}

// DeleteByEmployee implements timesheet.LeaveDayRepository.
func (r *leaveDayRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM leave_days WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete leave days for employee: %w", err)
	}

	return nil
}
