package response

import (
	"errors"
	"net/http"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
	"github.com/tracklite/attendance-backend-go/internal/domain/complaint"
	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
	"github.com/tracklite/attendance-backend-go/internal/domain/notification"
	"github.com/tracklite/attendance-backend-go/internal/domain/report"
	"github.com/tracklite/attendance-backend-go/internal/domain/user"
	"github.com/tracklite/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		validationFailed(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateCheckIn):
		fail(w, http.StatusConflict, "CONFLICT", "Attendance already recorded for this date")
	case errors.Is(err, attendance.ErrOutOfWindow):
		BadRequest(w, "Timestamp falls outside the permitted clock window", nil)
	case errors.Is(err, attendance.ErrInvalidOrder):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, attendance.ErrMissingReason):
		BadRequest(w, "A reason of at most 500 characters is required", nil)
	case errors.Is(err, attendance.ErrDurationOutOfBounds):
		BadRequest(w, "Worked duration must be between 30 minutes and 16 hours", nil)
	case errors.Is(err, attendance.ErrDateOutOfHorizon):
		BadRequest(w, "Date is outside the permitted 30 day horizon", nil)
	case errors.Is(err, attendance.ErrRecordTooOld):
		BadRequest(w, "Records older than 7 days cannot be deleted", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		fail(w, http.StatusNotFound, "NOT_FOUND", "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		fail(w, http.StatusNotFound, "NOT_FOUND", "Leave request not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrRangeTooLong):
		BadRequest(w, "Leave may not span more than 30 days", nil)
	case errors.Is(err, leave.ErrPastStartDate):
		BadRequest(w, "Leave cannot start in the past", nil)
	case errors.Is(err, leave.ErrMissingReason):
		BadRequest(w, "A reason is required", nil)
	case errors.Is(err, leave.ErrConflictingLeave):
		fail(w, http.StatusConflict, "CONFLICT", "Leave overlaps an approved request")
	case errors.Is(err, leave.ErrQuotaExceeded):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrNotOwner):
		fail(w, http.StatusForbidden, "FORBIDDEN", "Leave request belongs to another employee")
	case errors.Is(err, leave.ErrNotPending):
		fail(w, http.StatusConflict, "CONFLICT", "Leave request has already been decided")
	case errors.Is(err, leave.ErrAlreadyCancelled):
		fail(w, http.StatusConflict, "CONFLICT", "Leave request is already cancelled")
	case errors.Is(err, leave.ErrAlreadyStarted):
		fail(w, http.StatusConflict, "CONFLICT", "Approved leave has already started")
	case errors.Is(err, leave.ErrApprovedAndStarted):
		fail(w, http.StatusConflict, "CONFLICT", "Approved leave that has started cannot be deleted")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "Report range end must not be before start", nil)

	// Complaint domain errors
	case errors.Is(err, complaint.ErrComplaintNotFound):
		fail(w, http.StatusNotFound, "NOT_FOUND", "Complaint not found")
	case errors.Is(err, complaint.ErrNotOwner):
		fail(w, http.StatusForbidden, "FORBIDDEN", "Complaint belongs to another employee")
	case errors.Is(err, complaint.ErrAlreadyResolved):
		fail(w, http.StatusConflict, "CONFLICT", "Complaint is already resolved")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		fail(w, http.StatusNotFound, "NOT_FOUND", "Notification not found")
	case errors.Is(err, notification.ErrNotOwner):
		fail(w, http.StatusForbidden, "FORBIDDEN", "Notification belongs to another employee")

	// Employee directory errors
	case errors.Is(err, user.ErrEmployeeNotFound):
		fail(w, http.StatusNotFound, "NOT_FOUND", "Employee not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		fail(w, http.StatusForbidden, "FORBIDDEN", "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		fail(w, http.StatusForbidden, "FORBIDDEN", "Manager access required")

	// Default
	default:
		fail(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred")
	}
}
