package postgresql

import (
	"context"
	"fmt"

	"github.com/tracklite/attendance-backend-go/internal/domain/user"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) user.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements user.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (user.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, department, position, role, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp user.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Department, &emp.Position, &emp.Role,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return user.Employee{}, err
	}
	return emp, nil
}

// Exists implements user.EmployeeRepository.
func (e *employeeRepository) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}

// ListByDepartment implements user.EmployeeRepository.
func (e *employeeRepository) ListByDepartment(ctx context.Context, department string) ([]user.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, department, position, role, created_at, updated_at
		FROM employees
		WHERE department = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []user.Employee
	for rows.Next() {
		var emp user.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Department, &emp.Position, &emp.Role,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// CountAll implements user.EmployeeRepository.
func (e *employeeRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountByDepartment implements user.EmployeeRepository.
func (e *employeeRepository) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT department, COUNT(*) FROM employees GROUP BY department`)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var department string
		var count int64
		if err := rows.Scan(&department, &count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts[department] = count
	}
	return counts, rows.Err()
}
