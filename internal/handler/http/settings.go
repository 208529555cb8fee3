package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewSettingsHandler(timesheetService timesheet.TimesheetService) SettingsHandler {
	return &SettingsHandlerImpl{timesheetService: timesheetService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.timesheetService.GetSettings(r.Context())
	if err != nil {
		slog.Error("Failed to get settings", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// Update implements SettingsHandler.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.timesheetService.UpdateSettings(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update settings", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}
