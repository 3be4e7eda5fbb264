package user

import "context"

// EmployeeRepository reads the externally-owned employee directory.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Exists reports whether an employee with the given ID is registered
	Exists(ctx context.Context, id string) (bool, error)

	// ListByDepartment retrieves all employees in a department
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)

	// CountAll returns the total number of employees
	CountAll(ctx context.Context) (int64, error)

	// CountByDepartment returns employee counts keyed by department
	CountByDepartment(ctx context.Context) (map[string]int64, error)
}
