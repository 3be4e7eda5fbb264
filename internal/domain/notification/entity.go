package notification

import "time"

type Kind string

const (
	KindLeaveApproved  Kind = "leave_approved"
	KindLeaveRejected  Kind = "leave_rejected"
	KindComplaintReply Kind = "complaint_reply"
)

type Notification struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Kind       Kind      `json:"kind"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
