package attendance

import (
	"time"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
)

// MaxManualReasonLength bounds the justification text on manual entries.
const MaxManualReasonLength = 500

// ValidateCheckIn decides whether a new check-in may be recorded.
// existing is the employee's record for now's calendar date, nil when
// none exists. The window is evaluated against now, the submission
// clock, not against any stored timestamp.
func ValidateCheckIn(existing *attendance.Attendance, now time.Time) error {
	if existing != nil {
		return attendance.ErrDuplicateCheckIn
	}
	if !attendance.WithinCheckInWindow(now) {
		return attendance.ErrOutOfWindow
	}
	return nil
}

// ValidateCheckOut decides whether the open record may be closed at ts.
func ValidateCheckOut(record *attendance.Attendance, ts time.Time) error {
	if record == nil || !record.IsOpen() {
		return attendance.ErrRecordNotFound
	}
	if !ts.After(record.CheckIn) {
		return attendance.ErrInvalidOrder
	}
	return nil
}

// ValidateManualEntry decides whether a back-dated record may be
// created. existing is the employee's record for checkIn's calendar
// date, nil when none exists.
func ValidateManualEntry(existing *attendance.Attendance, checkIn time.Time, checkOut *time.Time, reason string, now time.Time) error {
	if reason == "" || len(reason) > MaxManualReasonLength {
		return attendance.ErrMissingReason
	}
	if existing != nil {
		return attendance.ErrDuplicateCheckIn
	}
	if !attendance.WithinBackEntryHorizon(checkIn, now) {
		return attendance.ErrDateOutOfHorizon
	}
	return validateClocks(checkIn, checkOut)
}

// ValidateEdit decides whether a record may be rewritten with the given
// timestamps. A nil newCheckOut reopens the record.
func ValidateEdit(record *attendance.Attendance, newCheckIn time.Time, newCheckOut *time.Time, now time.Time) error {
	if record == nil {
		return attendance.ErrRecordNotFound
	}
	if !attendance.WithinEditHorizon(record.CheckIn, now) {
		return attendance.ErrDateOutOfHorizon
	}
	return validateClocks(newCheckIn, newCheckOut)
}

// ValidateDelete decides whether a record may be removed.
func ValidateDelete(record *attendance.Attendance, now time.Time) error {
	if record == nil {
		return attendance.ErrRecordNotFound
	}
	if !attendance.WithinDeleteHorizon(record.CheckIn, now) {
		return attendance.ErrRecordTooOld
	}
	return nil
}

// validateClocks applies the manual clock windows, ordering and
// duration bounds shared by ManualEntry and Edit.
func validateClocks(checkIn time.Time, checkOut *time.Time) error {
	if !attendance.WithinManualCheckInClock(checkIn) {
		return attendance.ErrOutOfWindow
	}
	if checkOut == nil {
		return nil
	}
	if !attendance.WithinManualCheckOutClock(*checkOut) {
		return attendance.ErrOutOfWindow
	}
	if !checkOut.After(checkIn) {
		return attendance.ErrInvalidOrder
	}
	if !attendance.WithinWorkDurationBounds(checkOut.Sub(checkIn)) {
		return attendance.ErrDurationOutOfBounds
	}
	return nil
}
