package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) timesheet.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements timesheet.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (timesheet.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, auto_overtime_enabled, overtime_threshold_hours,
			   holiday_overtime_rate_multiplier, updated_at
		FROM engine_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var settings timesheet.Settings
	err := q.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.AutoOvertimeEnabled,
		&settings.OvertimeThresholdHours,
		&settings.HolidayOvertimeRateMultiplier,
		&settings.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Settings{}, timesheet.ErrSettingsNotFound
		}
		return timesheet.Settings{}, fmt.Errorf("failed to get engine settings: %w", err)
	}

	return settings, nil
}

// Upsert implements timesheet.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, settings timesheet.Settings) (timesheet.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO engine_settings (id, auto_overtime_enabled, overtime_threshold_hours, holiday_overtime_rate_multiplier)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			auto_overtime_enabled = EXCLUDED.auto_overtime_enabled,
			overtime_threshold_hours = EXCLUDED.overtime_threshold_hours,
			holiday_overtime_rate_multiplier = EXCLUDED.holiday_overtime_rate_multiplier,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		settings.ID,
		settings.AutoOvertimeEnabled,
		settings.OvertimeThresholdHours,
		settings.HolidayOvertimeRateMultiplier,
	).Scan(&settings.ID, &settings.UpdatedAt)

	if err != nil {
		return timesheet.Settings{}, fmt.Errorf("failed to upsert engine settings: %w", err)
	}

	return settings, nil
}
