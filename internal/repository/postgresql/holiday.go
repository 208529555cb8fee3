package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) timesheet.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements timesheet.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, holiday timesheet.Holiday) (timesheet.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Name).
		Scan(&holiday.ID, &holiday.CreatedAt)

	if err != nil {
		return timesheet.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// GetByDate implements timesheet.HolidayRepository.
func (r *holidayRepository) GetByDate(ctx context.Context, date string) (*timesheet.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE date = $1
		LIMIT 1
	`

	var holiday timesheet.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // date is not a holiday
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return &holiday, nil
}

// ListByDateRange implements timesheet.HolidayRepository.
func (r *holidayRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]timesheet.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []timesheet.Holiday
	for rows.Next() {
		var holiday timesheet.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, rows.Err()
}

// DeleteByDate implements timesheet.HolidayRepository.
func (r *holidayRepository) DeleteByDate(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}
