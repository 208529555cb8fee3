package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees with filters
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// GetAll retrieves every active employee, unfiltered.
	// Used by the aggregator for organization-wide totals.
	GetAll(ctx context.Context) ([]Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, emp Employee) error

	// Delete soft-deletes an employee. Timesheet entries and leave days
	// owned by the employee are removed by the service layer.
	Delete(ctx context.Context, id string) error
}
