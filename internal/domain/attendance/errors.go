package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrDuplicateCheckIn = errors.New("an attendance record already exists for this date")
	ErrOutOfWindow      = errors.New("timestamp is outside the allowed clock window")
	ErrInvalidOrder     = errors.New("check-out must be later than check-in")

	// Manual entry / edit errors
	ErrMissingReason       = errors.New("a reason is required and must not exceed 500 characters")
	ErrDurationOutOfBounds = errors.New("worked duration must be between 30 minutes and 16 hours")
	ErrDateOutOfHorizon    = errors.New("date is outside the allowed 30 day horizon")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrRecordTooOld   = errors.New("attendance records older than 7 days cannot be deleted")
)
