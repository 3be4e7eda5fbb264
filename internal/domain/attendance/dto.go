package attendance

import (
	"time"

	"github.com/tracklite/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	// Timestamp is optional; when empty the submission time is used.
	Timestamp string `json:"timestamp,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckOutRequest closes a record. AttendanceID is optional; when left
// empty the employee's open session is closed.
type CheckOutRequest struct {
	AttendanceID string `json:"attendance_id,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AttendanceID != "" && !validator.IsValidUUID(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id must be a valid UUID",
		})
	}
	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	Reason     string  `json:"reason"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDateTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be a valid ISO8601 datetime",
		})
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`

	// ClearCheckOut reopens the record; it wins over CheckOut.
	ClearCheckOut bool `json:"clear_check_out,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be a valid ISO8601 datetime",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter filters the admin/manager listing.
type AttendanceFilter struct {
	From       *time.Time
	To         *time.Time
	EmployeeID *string
	Department *string
	Status     string // "completed", "active" or empty
	Page       int
	Limit      int
}

// MyAttendanceFilter filters an employee's own history.
type MyAttendanceFilter struct {
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

type AttendanceResponse struct {
	ID                 string   `json:"attendance_id"`
	EmployeeID         string   `json:"employee_id"`
	EmployeeName       string   `json:"employee_name,omitempty"`
	EmployeeDepartment string   `json:"employee_department,omitempty"`
	Date               string   `json:"date"`
	CheckInTime        string   `json:"check_in_time"`
	CheckOutTime       *string  `json:"check_out_time,omitempty"`
	WorkingHours       *float64 `json:"working_hours,omitempty"`
	IsLate             bool     `json:"is_late"`
	IsEarlyLeave       *bool    `json:"is_early_leave,omitempty"`
	IsFullDay          bool     `json:"is_full_day"`
	Status             string   `json:"status"` // "in_progress" or "completed"
}

type TodayStatusResponse struct {
	HasCheckedIn  bool    `json:"has_checked_in"`
	HasCheckedOut bool    `json:"has_checked_out"`
	AttendanceID  *string `json:"attendance_id,omitempty"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
