package timesheet

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/database"
	"github.com/myoffice/timesheet-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	entryRepo    timesheet.EntryRepository
	leaveDayRepo timesheet.LeaveDayRepository
	holidayRepo  timesheet.HolidayRepository
	settingsRepo timesheet.SettingsRepository
	engine       *Engine
	defaults     timesheet.Settings
}

func NewTimesheetService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	entryRepo timesheet.EntryRepository,
	leaveDayRepo timesheet.LeaveDayRepository,
	holidayRepo timesheet.HolidayRepository,
	settingsRepo timesheet.SettingsRepository,
	defaults timesheet.Settings,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
		leaveDayRepo: leaveDayRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		engine:       NewEngine(),
		defaults:     defaults,
	}
}

// currentSettings falls back to the configured defaults until a settings row
// has been saved.
func (s *TimesheetServiceImpl) currentSettings(ctx context.Context) (timesheet.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, timesheet.ErrSettingsNotFound) {
			return s.defaults, nil
		}
		return timesheet.Settings{}, err
	}
	return settings, nil
}

// loadRange builds the in-memory record set the engine computes over, for
// every employee, covering [startDate, endDate] inclusive.
func (s *TimesheetServiceImpl) loadRange(ctx context.Context, startDate, endDate string) (*Records, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	entries, err := s.entryRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	leaveDays, err := s.leaveDayRepo.ListByDateRange(ctx, nil, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave days: %w", err)
	}

	holidays, err := s.holidayRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	return NewRecords(employees, entries, leaveDays, holidays), nil
}

// loadDay builds a record set scoped to one (employee, date) pair.
func (s *TimesheetServiceImpl) loadDay(ctx context.Context, employeeID, date string) (*Records, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var entries []timesheet.Entry
	entry, err := s.entryRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}
	if entry != nil {
		entries = append(entries, *entry)
	}

	leaveDays, err := s.leaveDayRepo.ListByDateRange(ctx, &employeeID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave days: %w", err)
	}

	var holidays []timesheet.Holiday
	holiday, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday: %w", err)
	}
	if holiday != nil {
		holidays = append(holidays, *holiday)
	}

	return NewRecords([]employee.Employee{emp}, entries, leaveDays, holidays), nil
}

// applyChanges mirrors an engine change set into storage, inside one
// transaction. Records the engine created in memory get their ids here.
func (s *TimesheetServiceImpl) applyChanges(ctx context.Context, changes ChangeSet) error {
	if changes.Empty() {
		return nil
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, entry := range changes.UpsertEntries {
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}
			if _, err := s.entryRepo.Upsert(txCtx, entry); err != nil {
				return fmt.Errorf("failed to upsert entry: %w", err)
			}
		}

		for _, key := range changes.DeleteEntries {
			if err := s.entryRepo.DeleteByEmployeeAndDate(txCtx, key.EmployeeID, key.Date); err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}
		}

		for _, ld := range changes.UpsertLeaveDays {
			if ld.ID == "" {
				ld.ID = uuid.NewString()
			}
			if _, err := s.leaveDayRepo.Upsert(txCtx, ld); err != nil {
				return fmt.Errorf("failed to upsert leave day: %w", err)
			}
		}

		for _, key := range changes.DeleteLeaveDays {
			if err := s.leaveDayRepo.DeleteByEmployeeAndDate(txCtx, key.EmployeeID, key.Date); err != nil {
				return fmt.Errorf("failed to delete leave day: %w", err)
			}
		}

		for _, holiday := range changes.AddHolidays {
			if holiday.ID == "" {
				holiday.ID = uuid.NewString()
			}
			if _, err := s.holidayRepo.Create(txCtx, holiday); err != nil {
				return fmt.Errorf("failed to create holiday: %w", err)
			}
		}

		for _, date := range changes.RemoveHolidays {
			if err := s.holidayRepo.DeleteByDate(txCtx, date); err != nil {
				return fmt.Errorf("failed to delete holiday: %w", err)
			}
		}

		return nil
	})
}

func mapResolvedToResponse(resolved timesheet.ResolvedDay) timesheet.ResolvedDayResponse {
	totalMinutes := int(math.Round(resolved.TotalHours * 60))

	return timesheet.ResolvedDayResponse{
		EmployeeID:           resolved.EmployeeID,
		Date:                 resolved.Date,
		Status:               string(resolved.Status),
		StatusLabel:          resolved.Status.Label(),
		StartTime:            resolved.StartTime,
		EndTime:              resolved.EndTime,
		BreakMinutes:         resolved.BreakMinutes,
		RegularHours:         resolved.RegularHours,
		OvertimeHours:        resolved.OvertimeHours,
		HolidayOvertimeHours: resolved.HolidayOvertimeHours,
		TotalHours:           resolved.TotalHours,
		TotalDisplay:         ToDisplay(totalMinutes).Text,
	}
}

func mapEntryToResponse(entry timesheet.Entry) timesheet.EntryResponse {
	return timesheet.EntryResponse{
		ID:                   entry.ID,
		EmployeeID:           entry.EmployeeID,
		EmployeeName:         entry.EmployeeName,
		Date:                 entry.Date,
		StartTime:            entry.StartTime,
		EndTime:              entry.EndTime,
		BreakMinutes:         entry.BreakMinutes,
		RegularHours:         entry.RegularHours,
		OvertimeHours:        entry.OvertimeHours,
		HolidayOvertimeHours: entry.HolidayOvertimeHours,
		TotalHours:           entry.TotalHours,
		Status:               string(entry.Status),
	}
}

func monthBounds(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// ResolveMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ResolveMonth(ctx context.Context, employeeID string, year, month int) ([]timesheet.ResolvedDayResponse, error) {
	if month < 1 || month > 12 {
		return nil, timesheet.ErrInvalidDate
	}

	startDate, endDate := monthBounds(year, month)
	rec, err := s.loadRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if employeeID != "" {
		emp, ok := rec.Employees[employeeID]
		if !ok {
			return nil, employee.ErrEmployeeNotFound
		}
		employees = []employee.Employee{emp}
	} else {
		for _, emp := range rec.Employees {
			employees = append(employees, emp)
		}
		sort.Slice(employees, func(i, j int) bool {
			return employees[i].FullName < employees[j].FullName
		})
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var days []timesheet.ResolvedDayResponse
	for _, emp := range employees {
		for day := first; int(day.Month()) == month; day = day.AddDate(0, 0, 1) {
			resolved := s.engine.ResolveDay(emp.ID, day.Format("2006-01-02"), rec, cfg)
			days = append(days, mapResolvedToResponse(resolved))
		}
	}

	return days, nil
}

// SetStatus implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SetStatus(ctx context.Context, req timesheet.SetStatusRequest) (timesheet.ResolvedDayResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	rec, err := s.loadDay(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	changes, err := s.engine.SetStatus(rec, req.EmployeeID, req.Date, timesheet.Status(req.Status))
	if err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	if err := s.applyChanges(ctx, changes); err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	return mapResolvedToResponse(s.engine.ResolveDay(req.EmployeeID, req.Date, rec, cfg)), nil
}

// SetTime implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) SetTime(ctx context.Context, req timesheet.SetTimeRequest) (timesheet.ResolvedDayResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	rec, err := s.loadDay(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	changes, err := s.engine.SetTime(rec, req.EmployeeID, req.Date, timesheet.DayField(req.Field), req.Value, cfg)
	if err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	if err := s.applyChanges(ctx, changes); err != nil {
		return timesheet.ResolvedDayResponse{}, err
	}

	return mapResolvedToResponse(s.engine.ResolveDay(req.EmployeeID, req.Date, rec, cfg)), nil
}

// ToggleHoliday implements timesheet.TimesheetService. The returned bool
// reports whether the date is a holiday after the toggle.
func (s *TimesheetServiceImpl) ToggleHoliday(ctx context.Context, req timesheet.ToggleHolidayRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}

	var holidays []timesheet.Holiday
	holiday, err := s.holidayRepo.GetByDate(ctx, req.Date)
	if err != nil {
		return false, fmt.Errorf("failed to load holiday: %w", err)
	}
	if holiday != nil {
		holidays = append(holidays, *holiday)
	}

	rec := NewRecords(nil, nil, nil, holidays)
	changes := s.engine.ToggleHoliday(rec, req.Date, req.Name)

	if err := s.applyChanges(ctx, changes); err != nil {
		return false, err
	}

	return len(changes.AddHolidays) > 0, nil
}

// BulkShift implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) BulkShift(ctx context.Context, req timesheet.BulkShiftRequest) ([]timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.loadRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	shift := ShiftPreset{
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
	}

	changes, err := s.engine.ApplyShiftToRange(rec, req.EmployeeID, req.StartDate, req.EndDate, shift, cfg)
	if err != nil {
		return nil, err
	}

	if err := s.applyChanges(ctx, changes); err != nil {
		return nil, err
	}

	responses := make([]timesheet.EntryResponse, 0, len(changes.UpsertEntries))
	for _, entry := range changes.UpsertEntries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return responses, nil
}

// ListEntries implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListEntries(ctx context.Context, filter timesheet.EntryFilter) ([]timesheet.EntryResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}

	responses := make([]timesheet.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return responses, int64(len(responses)), nil
}

// ListHolidays implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListHolidays(ctx context.Context, startDate, endDate string) ([]timesheet.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]timesheet.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		responses = append(responses, timesheet.HolidayResponse{
			ID:   holiday.ID,
			Date: holiday.Date,
			Name: holiday.Name,
		})
	}

	return responses, nil
}

// ListLeaveDays implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListLeaveDays(ctx context.Context, employeeID, startDate, endDate string) ([]timesheet.LeaveDayResponse, error) {
	var filter *string
	if employeeID != "" {
		filter = &employeeID
	}

	leaveDays, err := s.leaveDayRepo.ListByDateRange(ctx, filter, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave days: %w", err)
	}

	responses := make([]timesheet.LeaveDayResponse, 0, len(leaveDays))
	for _, ld := range leaveDays {
		responses = append(responses, timesheet.LeaveDayResponse{
			ID:         ld.ID,
			EmployeeID: ld.EmployeeID,
			Date:       ld.Date,
			Status:     string(ld.Status),
		})
	}

	return responses, nil
}

func mapSettingsToResponse(settings timesheet.Settings) timesheet.SettingsResponse {
	return timesheet.SettingsResponse{
		AutoOvertimeEnabled:           settings.AutoOvertimeEnabled,
		OvertimeThresholdHours:        settings.OvertimeThresholdHours,
		HolidayOvertimeRateMultiplier: settings.HolidayOvertimeRateMultiplier,
	}
}

// GetSettings implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetSettings(ctx context.Context) (timesheet.SettingsResponse, error) {
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return timesheet.SettingsResponse{}, err
	}

	return mapSettingsToResponse(settings), nil
}

// UpdateSettings implements timesheet.TimesheetService. Fields left out of
// the request keep their current value.
func (s *TimesheetServiceImpl) UpdateSettings(ctx context.Context, req timesheet.UpdateSettingsRequest) (timesheet.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.SettingsResponse{}, err
	}

	settings, err := s.currentSettings(ctx)
	if err != nil {
		return timesheet.SettingsResponse{}, err
	}
	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}

	if req.AutoOvertimeEnabled != nil {
		settings.AutoOvertimeEnabled = *req.AutoOvertimeEnabled
	}
	if req.OvertimeThresholdHours != nil {
		settings.OvertimeThresholdHours = *req.OvertimeThresholdHours
	}
	if req.HolidayOvertimeRateMultiplier != nil {
		settings.HolidayOvertimeRateMultiplier = *req.HolidayOvertimeRateMultiplier
	}

	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		return timesheet.SettingsResponse{}, err
	}

	return mapSettingsToResponse(saved), nil
}

// ReconcileDerivedHours implements timesheet.TimesheetService. The stored
// hour breakdown is advisory; this sweep brings Work rows written under an
// old threshold back in line with the current settings. Status-day entries
// carry credited defaults, not clocked time, and are never rewritten.
func (s *TimesheetServiceImpl) ReconcileDerivedHours(ctx context.Context) (int, error) {
	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return 0, err
	}

	entries, err := s.entryRepo.List(ctx, timesheet.EntryFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list entries: %w", err)
	}

	rewritten := 0
	for _, entry := range entries {
		updated, drifted := s.engine.ReconcileEntry(entry, cfg)
		if !drifted {
			continue
		}

		if _, err := s.entryRepo.Upsert(ctx, updated); err != nil {
			return rewritten, fmt.Errorf("failed to rewrite entry %s: %w", updated.ID, err)
		}
		rewritten++
	}

	return rewritten, nil
}
