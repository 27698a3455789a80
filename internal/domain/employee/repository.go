package employee

import "context"

// EmployeeRepository defines read-only data access for employee records.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// CountActive counts active employees, optionally within one department
	CountActive(ctx context.Context, department *string) (int, error)

	// ListActive retrieves active employees, optionally within one department
	ListActive(ctx context.Context, department *string) ([]Employee, error)
}
