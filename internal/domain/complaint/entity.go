package complaint

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusResolved  Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusResolved:
		return true
	}
	return false
}

type Complaint struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Status     Status     `json:"status"`
	Response   *string    `json:"response,omitempty"`
	HandledBy  *string    `json:"handled_by,omitempty"`
	HandledAt  *time.Time `json:"handled_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	EmployeeName *string `json:"employee_name,omitempty"`
}
