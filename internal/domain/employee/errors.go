package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameExists       = errors.New("an employee with this name already exists")
	ErrNegativeRate     = errors.New("hourly rate must not be negative")
)
