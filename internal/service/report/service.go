package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	timesheetservice "github.com/myoffice/timesheet-backend-go/internal/service/timesheet"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	entryRepo    timesheet.EntryRepository
	leaveDayRepo timesheet.LeaveDayRepository
	holidayRepo  timesheet.HolidayRepository
	settingsRepo timesheet.SettingsRepository
	engine       *timesheetservice.Engine
	defaults     timesheet.Settings
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	entryRepo timesheet.EntryRepository,
	leaveDayRepo timesheet.LeaveDayRepository,
	holidayRepo timesheet.HolidayRepository,
	settingsRepo timesheet.SettingsRepository,
	defaults timesheet.Settings,
) timesheet.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
		leaveDayRepo: leaveDayRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		engine:       timesheetservice.NewEngine(),
		defaults:     defaults,
	}
}

func mapTotalsToResponse(totals timesheet.MonthlyTotals, name string) timesheet.MonthlyTotalsResponse {
	return timesheet.MonthlyTotalsResponse{
		EmployeeID:           totals.EmployeeID,
		EmployeeName:         name,
		TotalRegular:         totals.TotalRegular,
		TotalOvertime:        totals.TotalOvertime,
		TotalHolidayOvertime: totals.TotalHolidayOvertime,
		TotalHours:           totals.TotalHours,
		TotalDaysWorked:      totals.TotalDaysWorked,
		TotalPay:             totals.TotalPay.StringFixed(2),
	}
}

// MonthlyReport implements timesheet.ReportService. When department is
// non-empty only employees of that department are included, in both the
// per-employee rows and the organization totals.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, year, month int, department string) (timesheet.MonthlyReportResponse, error) {
	if month < 1 || month > 12 {
		return timesheet.MonthlyReportResponse{}, timesheet.ErrInvalidDate
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	startDate := first.Format("2006-01-02")
	endDate := first.AddDate(0, 1, -1).Format("2006-01-02")

	entries, err := s.entryRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to load entries: %w", err)
	}

	leaveDays, err := s.leaveDayRepo.ListByDateRange(ctx, nil, startDate, endDate)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to load leave days: %w", err)
	}

	holidays, err := s.holidayRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, timesheet.ErrSettingsNotFound) {
			return timesheet.MonthlyReportResponse{}, err
		}
		cfg = s.defaults
	}

	rec := timesheetservice.NewRecords(employees, entries, leaveDays, holidays)

	selected := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if department != "" && emp.Department != department {
			continue
		}
		selected = append(selected, emp)
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].FullName < selected[j].FullName
	})

	report := timesheet.MonthlyReportResponse{
		Month:     month,
		Year:      year,
		Employees: make([]timesheet.MonthlyTotalsResponse, 0, len(selected)),
	}

	ids := make([]string, 0, len(selected))
	for _, emp := range selected {
		totals, err := s.engine.MonthlyTotals(emp.ID, year, time.Month(month), rec, cfg)
		if err != nil {
			return timesheet.MonthlyReportResponse{}, err
		}
		report.Employees = append(report.Employees, mapTotalsToResponse(totals, emp.FullName))
		ids = append(ids, emp.ID)
	}

	orgTotals, err := s.engine.OrganizationTotals(ids, year, time.Month(month), rec, cfg)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, err
	}
	report.Totals = mapTotalsToResponse(orgTotals, "")

	return report, nil
}
