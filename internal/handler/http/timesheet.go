package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	SetTime(w http.ResponseWriter, r *http.Request)
	BulkShift(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	ListLeaveDays(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// monthParams reads year/month from the query, defaulting to the current
// month when absent.
func monthParams(r *http.Request) (int, int, bool) {
	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if value := r.URL.Query().Get("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, 0, false
		}
		year = parsed
	}
	if value := r.URL.Query().Get("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, 0, false
		}
		month = parsed
	}

	return year, month, true
}

// GetMonth implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be numbers", nil)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")

	days, err := h.timesheetService.ResolveMonth(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("Failed to resolve month", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

// SetStatus implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.timesheetService.SetStatus(r.Context(), req)
	if err != nil {
		slog.Error("Failed to set day status", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// SetTime implements TimesheetHandler.
func (h *TimesheetHandlerImpl) SetTime(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SetTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set time decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.timesheetService.SetTime(r.Context(), req)
	if err != nil {
		slog.Error("Failed to set entry time", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// BulkShift implements TimesheetHandler.
func (h *TimesheetHandlerImpl) BulkShift(w http.ResponseWriter, r *http.Request) {
	var req timesheet.BulkShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entries, err := h.timesheetService.BulkShift(r.Context(), req)
	if err != nil {
		slog.Error("Failed to apply shift to range", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift applied to range", entries)
}

// ListEntries implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	var filter timesheet.EntryFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	entries, total, err := h.timesheetService.ListEntries(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list entries", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, entries, &response.Meta{TotalItems: total})
}

// ListLeaveDays implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListLeaveDays(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be numbers", nil)
		return
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	startDate := first.Format("2006-01-02")
	endDate := first.AddDate(0, 1, -1).Format("2006-01-02")

	leaveDays, err := h.timesheetService.ListLeaveDays(r.Context(), r.URL.Query().Get("employee_id"), startDate, endDate)
	if err != nil {
		slog.Error("Failed to list leave days", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveDays)
}
