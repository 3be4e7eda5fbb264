package attendance

import (
	"time"
)

type Attendance struct {
	ID           string
	EmployeeID   string
	CheckIn      time.Time
	CheckOut     *time.Time
	ManualReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName       *string
	EmployeeDepartment *string
}

// IsOpen reports whether the record has a check-in but no check-out yet.
func (a *Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// Duration returns the worked duration for a closed record, nil while open.
func (a *Attendance) Duration() *time.Duration {
	if a.CheckOut == nil {
		return nil
	}
	d := a.CheckOut.Sub(a.CheckIn)
	return &d
}
