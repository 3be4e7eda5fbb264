package leave

import "errors"

var (
	ErrRequestNotFound    = errors.New("leave request not found")
	ErrInvalidRange       = errors.New("end date must not be before start date")
	ErrRangeTooLong       = errors.New("leave range exceeds the maximum length")
	ErrPastStartDate      = errors.New("leave cannot start in the past")
	ErrMissingReason      = errors.New("leave reason is required")
	ErrConflictingLeave   = errors.New("leave overlaps an approved request")
	ErrQuotaExceeded      = errors.New("insufficient leave balance for this request")
	ErrNotOwner           = errors.New("leave request belongs to another employee")
	ErrNotPending         = errors.New("leave request has already been decided")
	ErrAlreadyCancelled   = errors.New("leave request is already cancelled")
	ErrAlreadyStarted     = errors.New("approved leave has already started")
	ErrApprovedAndStarted = errors.New("approved leave that has started cannot be deleted")
)
