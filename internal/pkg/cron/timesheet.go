package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
)

// TimesheetJobs keeps stored entry hours consistent with the current engine
// settings. Hours are recomputed on read anyway; the sweep exists so exports
// reading rows directly see the same numbers the grid shows.
type TimesheetJobs struct {
	timesheetSvc timesheet.TimesheetService
}

func NewTimesheetJobs(timesheetSvc timesheet.TimesheetService) *TimesheetJobs {
	return &TimesheetJobs{timesheetSvc: timesheetSvc}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_derived_hours", 1*time.Hour, j.ReconcileDerivedHours)
}

func (j *TimesheetJobs) ReconcileDerivedHours(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting derived hours reconciliation job")

	rewritten, err := j.timesheetSvc.ReconcileDerivedHours(ctx)
	if err != nil {
		return err
	}

	if rewritten == 0 {
		slog.Info("Cron: No drifted entries found")
		return nil
	}

	slog.Info("Cron: Derived hours reconciled", "rewritten", rewritten)
	return nil
}
