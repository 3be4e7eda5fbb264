package complaint

import (
	"time"

	"github.com/tracklite/attendance-backend-go/internal/pkg/validator"
)

const MaxMessageLength = 1000

type SubmitRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "Subject is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "Message is required"})
	} else if len(r.Message) > MaxMessageLength {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "Message must be at most 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RespondRequest struct {
	ID       string `json:"-"`
	Response string `json:"response"`
	Resolve  bool   `json:"resolve"`
}

func (r *RespondRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "Complaint ID must be a valid UUID"})
	}
	if validator.IsEmpty(r.Response) {
		errs = append(errs, validator.ValidationError{Field: "response", Message: "Response is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID string
	Status     Status
	Page       int
	Limit      int
}

type ComplaintResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	Status       Status     `json:"status"`
	Response     *string    `json:"response,omitempty"`
	HandledBy    *string    `json:"handled_by,omitempty"`
	HandledAt    *time.Time `json:"handled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}
