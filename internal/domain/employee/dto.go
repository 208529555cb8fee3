package employee

import (
	"github.com/myoffice/timesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName   string  `json:"name"`
	Department string  `json:"department"`
	HourlyRate string  `json:"rate"`
	Color      *string `json:"color,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.HourlyRate) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate is required",
		})
	} else if rate, err := decimal.NewFromString(r.HourlyRate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be a decimal number",
		})
	} else if rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	HourlyRate *string `json:"rate,omitempty"`
	Color      *string `json:"color,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName == nil && r.Department == nil && r.HourlyRate == nil && r.Color == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.HourlyRate != nil {
		if rate, err := decimal.NewFromString(*r.HourlyRate); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "rate",
				Message: "rate must be a decimal number",
			})
		} else if rate.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "rate",
				Message: "rate must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"name"`
	Department string  `json:"department"`
	HourlyRate string  `json:"rate"`
	Color      *string `json:"color,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type EmployeeFilter struct {
	// Search & Filter
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // name, department, rate, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must not be negative",
		})
	}

	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 0 and 100",
		})
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"name", "department", "rate", "created_at"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "invalid sort column",
		})
	}

	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
