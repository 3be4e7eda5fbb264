package leave

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsFinalDecision reports whether the status was reached through an
// approver decision rather than an owner action.
func (s Status) IsFinalDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type Category string

const (
	CategoryAnnual Category = "annual"
	CategorySick   Category = "sick"
)

func (c Category) Valid() bool {
	return c == CategoryAnnual || c == CategorySick
}

// Quota returns the yearly day allowance for the category. Unknown
// categories fall back to the annual allowance.
func (c Category) Quota() int {
	switch c {
	case CategorySick:
		return 30
	default:
		return 12
	}
}

type Request struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	Category     Category   `json:"category"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	DecidedBy    *string    `json:"decided_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	DecisionNote *string    `json:"decision_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Populated by list queries that join the employees table.
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
}

// TotalDays counts the days the request spans, both endpoints included.
func (r *Request) TotalDays() int {
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Balance is the per-category remainder for one employee in one year.
type Balance struct {
	Category  Category `json:"category"`
	Quota     int      `json:"quota"`
	Used      int      `json:"used"`
	Remaining int      `json:"remaining"`
}
