package main

import (
	"fmt"
	"net/http"

	"github.com/myoffice/timesheet-backend-go/internal/config"
	timesheetDomain "github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	appHTTP "github.com/myoffice/timesheet-backend-go/internal/handler/http"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/cron"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/database"
	"github.com/myoffice/timesheet-backend-go/internal/repository/postgresql"
	employeeService "github.com/myoffice/timesheet-backend-go/internal/service/employee"
	reportService "github.com/myoffice/timesheet-backend-go/internal/service/report"
	timesheetService "github.com/myoffice/timesheet-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	leaveDayRepo := postgresql.NewLeaveDayRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	engineDefaults := timesheetDomain.Settings{
		AutoOvertimeEnabled:           cfg.Engine.AutoOvertimeEnabled,
		OvertimeThresholdHours:        cfg.Engine.OvertimeThresholdHours,
		HolidayOvertimeRateMultiplier: cfg.Engine.HolidayOvertimeRateMultiplier,
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, entryRepo, leaveDayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		employeeRepo,
		entryRepo,
		leaveDayRepo,
		holidayRepo,
		settingsRepo,
		engineDefaults,
	)
	reportSvc := reportService.NewReportService(
		employeeRepo,
		entryRepo,
		leaveDayRepo,
		holidayRepo,
		settingsRepo,
		engineDefaults,
	)

	scheduler := cron.NewScheduler()
	cron.NewTimesheetJobs(timesheetSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	holidayHandler := appHTTP.NewHolidayHandler(timesheetSvc)
	settingsHandler := appHTTP.NewSettingsHandler(timesheetSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeHandler,
		timesheetHandler,
		holidayHandler,
		settingsHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
