package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages records and users
	RoleManager  Role = "manager"  // Can approve leave for their department
	RoleEmployee Role = "employee" // Regular employee
)

// Employee is the identity this engine validates against. Ownership of the
// record belongs to the user-management collaborator; this backend only reads.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
	Position   string
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin checks if the employee has administrative access
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsManager checks if the employee is a manager or admin
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager || e.Role == RoleAdmin
}

// CanApprove checks if the employee can approve leave requests
func (e *Employee) CanApprove() bool {
	return e.IsManager()
}
