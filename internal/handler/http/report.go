package http

import (
	"log/slog"
	"net/http"

	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService timesheet.ReportService
}

func NewReportHandler(reportService timesheet.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be numbers", nil)
		return
	}

	report, err := h.reportService.MonthlyReport(r.Context(), year, month, r.URL.Query().Get("department"))
	if err != nil {
		slog.Error("Failed to build monthly report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
