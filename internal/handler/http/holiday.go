package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewHolidayHandler(timesheetService timesheet.TimesheetService) HolidayHandler {
	return &HolidayHandlerImpl{timesheetService: timesheetService}
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be numbers", nil)
		return
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	startDate := first.Format("2006-01-02")
	endDate := first.AddDate(0, 1, -1).Format("2006-01-02")

	holidays, err := h.timesheetService.ListHolidays(r.Context(), startDate, endDate)
	if err != nil {
		slog.Error("Failed to list holidays", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Toggle implements HolidayHandler.
func (h *HolidayHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ToggleHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Toggle holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	isHoliday, err := h.timesheetService.ToggleHoliday(r.Context(), req)
	if err != nil {
		slog.Error("Failed to toggle holiday", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"date":       req.Date,
		"is_holiday": isHoliday,
	})
}
