package response

import (
	"errors"
	"net/http"

	"github.com/myoffice/timesheet-backend-go/internal/domain/employee"
	"github.com/myoffice/timesheet-backend-go/internal/domain/timesheet"
	"github.com/myoffice/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNameExists):
		Conflict(w, "An employee with this name already exists")
	case errors.Is(err, employee.ErrNegativeRate):
		BadRequest(w, "Hourly rate must be a non-negative decimal", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidStatus):
		BadRequest(w, "Unknown day status", nil)
	case errors.Is(err, timesheet.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, timesheet.ErrInvalidDayField):
		BadRequest(w, "Unknown entry field", nil)
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
