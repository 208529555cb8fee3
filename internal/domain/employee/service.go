package employee

import "context"

// EmployeeService is the employee CRUD surface consumed by the HTTP layer.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes the employee together with every timesheet entry and
	// leave day the employee owns.
	Delete(ctx context.Context, id string) error
}
