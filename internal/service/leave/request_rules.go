package leave

import (
	"time"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
)

// ValidateRange applies the shape checks shared by submit and update:
// ordering, maximum span and the no-past-start rule. now supplies the
// reference "today".
func ValidateRange(start, end time.Time, reason string, now time.Time) error {
	start = dateOnly(start)
	end = dateOnly(end)
	today := dateOnly(now)

	if end.Before(start) {
		return leave.ErrInvalidRange
	}
	if totalDays(start, end) > leave.MaxRequestDays {
		return leave.ErrRangeTooLong
	}
	if start.Before(today) {
		return leave.ErrPastStartDate
	}
	if reason == "" {
		return leave.ErrMissingReason
	}
	return nil
}

// CanUpdate guards the owner-only, pending-only edit path.
func CanUpdate(req *leave.Request, ownerID string) error {
	if req.EmployeeID != ownerID {
		return leave.ErrNotOwner
	}
	if req.Status != leave.StatusPending {
		return leave.ErrNotPending
	}
	return nil
}

// CanDecide guards the approve and reject transitions.
func CanDecide(req *leave.Request) error {
	if req.Status != leave.StatusPending {
		return leave.ErrNotPending
	}
	return nil
}

// CanCancel guards the single transition out of pending or approved
// initiated by the owner. Approved leave that has already begun stays
// on the books.
func CanCancel(req *leave.Request, ownerID string, now time.Time) error {
	if req.EmployeeID != ownerID {
		return leave.ErrNotOwner
	}
	if req.Status == leave.StatusCancelled {
		return leave.ErrAlreadyCancelled
	}
	if req.Status == leave.StatusApproved && !dateOnly(now).Before(dateOnly(req.StartDate)) {
		return leave.ErrAlreadyStarted
	}
	return nil
}

// CanDelete guards the administrative removal path.
func CanDelete(req *leave.Request, now time.Time) error {
	if req.Status == leave.StatusApproved && !dateOnly(now).Before(dateOnly(req.StartDate)) {
		return leave.ErrApprovedAndStarted
	}
	return nil
}

func totalDays(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
}
