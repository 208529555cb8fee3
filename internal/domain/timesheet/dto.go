package timesheet

import (
	"github.com/myoffice/timesheet-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type SetStatusRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of work, leave, off, absent, holiday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayField names the editable cell of a timesheet entry.
type DayField string

const (
	FieldStartTime    DayField = "start_time"
	FieldEndTime      DayField = "end_time"
	FieldBreakMinutes DayField = "break_minutes"
)

type SetTimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Field      string `json:"field"`
	Value      string `json:"value"`
}

func (r *SetTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	switch DayField(r.Field) {
	case FieldStartTime, FieldEndTime, FieldBreakMinutes:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be start_time, end_time or break_minutes",
		})
	}

	if DayField(r.Field) == FieldBreakMinutes && !validator.IsNumeric(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "break_minutes must be a whole number of minutes",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ToggleHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *ToggleHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkShiftRequest struct {
	EmployeeID   string `json:"employee_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
}

func (r *BulkShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Department *string `json:"department,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSettingsRequest struct {
	AutoOvertimeEnabled           *bool    `json:"auto_overtime_enabled,omitempty"`
	OvertimeThresholdHours        *float64 `json:"overtime_threshold_hours,omitempty"`
	HolidayOvertimeRateMultiplier *float64 `json:"holiday_overtime_rate_multiplier,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OvertimeThresholdHours != nil && *r.OvertimeThresholdHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_threshold_hours",
			Message: "overtime threshold must be positive",
		})
	}

	if r.HolidayOvertimeRateMultiplier != nil && *r.HolidayOvertimeRateMultiplier < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_overtime_rate_multiplier",
			Message: "holiday overtime multiplier must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type EntryResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	Date                 string  `json:"date"`
	StartTime            *string `json:"start_time,omitempty"`
	EndTime              *string `json:"end_time,omitempty"`
	BreakMinutes         int     `json:"break_minutes"`
	RegularHours         float64 `json:"regular_hours"`
	OvertimeHours        float64 `json:"overtime_hours"`
	HolidayOvertimeHours float64 `json:"holiday_overtime_hours"`
	TotalHours           float64 `json:"total_hours"`
	Status               string  `json:"status"`
}

type ResolvedDayResponse struct {
	EmployeeID           string  `json:"employee_id"`
	Date                 string  `json:"date"`
	Status               string  `json:"status"`
	StatusLabel          string  `json:"status_label"`
	StartTime            *string `json:"start_time,omitempty"`
	EndTime              *string `json:"end_time,omitempty"`
	BreakMinutes         int     `json:"break_minutes"`
	RegularHours         float64 `json:"regular_hours"`
	OvertimeHours        float64 `json:"overtime_hours"`
	HolidayOvertimeHours float64 `json:"holiday_overtime_hours"`
	TotalHours           float64 `json:"total_hours"`
	TotalDisplay         string  `json:"total_display"`
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type LeaveDayResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type SettingsResponse struct {
	AutoOvertimeEnabled           bool    `json:"auto_overtime_enabled"`
	OvertimeThresholdHours        float64 `json:"overtime_threshold_hours"`
	HolidayOvertimeRateMultiplier float64 `json:"holiday_overtime_rate_multiplier"`
}

type MonthlyTotalsResponse struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	TotalRegular         float64 `json:"total_regular"`
	TotalOvertime        float64 `json:"total_overtime"`
	TotalHolidayOvertime float64 `json:"total_holiday_overtime"`
	TotalHours           float64 `json:"total_hours"`
	TotalDaysWorked      int     `json:"total_days_worked"`
	TotalPay             string  `json:"total_pay"`
}

type MonthlyReportResponse struct {
	Month     int                     `json:"month"`
	Year      int                     `json:"year"`
	Employees []MonthlyTotalsResponse `json:"employees"`
	Totals    MonthlyTotalsResponse   `json:"totals"`
}
