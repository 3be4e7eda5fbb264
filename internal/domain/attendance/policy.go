package attendance

import "time"

// Time window policy. These are organizational constants, not configuration:
// every validation below is a pure predicate over a clock-of-day or a
// calendar-day difference.
const (
	// Regular check-in is accepted in [05:00, 12:00).
	CheckInWindowOpens  = 5 * time.Hour
	CheckInWindowCloses = 12 * time.Hour

	// A check-in after 09:00 is flagged late, a check-out before 17:30 is
	// flagged as an early leave. Neither is rejected.
	LateCheckInThreshold   = 9 * time.Hour
	EarlyCheckOutThreshold = 17*time.Hour + 30*time.Minute

	// Manual and edited entries accept a wider clock range: check-in from
	// 04:00, check-out from 06:00, both until end of day.
	ManualCheckInEarliest  = 4 * time.Hour
	ManualCheckOutEarliest = 6 * time.Hour

	// Worked duration bounds for closed records.
	MinWorkDuration = 30 * time.Minute
	MaxWorkDuration = 16 * time.Hour

	// A full working day for reporting purposes.
	FullDayDuration = 8 * time.Hour

	// Horizons, in calendar days relative to "today".
	EditHorizonDays      = 30
	BackEntryHorizonDays = 30
	DeleteHorizonDays    = 7
)

// ClockOfDay returns t's wall-clock time as an offset from midnight.
func ClockOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// WithinCheckInWindow reports whether t's clock time falls in [05:00, 12:00).
func WithinCheckInWindow(t time.Time) bool {
	c := ClockOfDay(t)
	return c >= CheckInWindowOpens && c < CheckInWindowCloses
}

// IsLateCheckIn reports whether a check-in clock time is after 09:00.
func IsLateCheckIn(t time.Time) bool {
	return ClockOfDay(t) > LateCheckInThreshold
}

// IsEarlyCheckOut reports whether a check-out clock time is before 17:30.
func IsEarlyCheckOut(t time.Time) bool {
	return ClockOfDay(t) < EarlyCheckOutThreshold
}

// WithinManualCheckInClock reports whether t's clock time is valid for a
// manual or edited check-in (04:00 to end of day).
func WithinManualCheckInClock(t time.Time) bool {
	return ClockOfDay(t) >= ManualCheckInEarliest
}

// WithinManualCheckOutClock reports whether t's clock time is valid for a
// manual or edited check-out (06:00 to end of day).
func WithinManualCheckOutClock(t time.Time) bool {
	return ClockOfDay(t) >= ManualCheckOutEarliest
}

// WithinWorkDurationBounds reports whether a closed record's duration is
// acceptable: at least 30 minutes, at most 16 hours.
func WithinWorkDurationBounds(d time.Duration) bool {
	return d >= MinWorkDuration && d <= MaxWorkDuration
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysBetween returns the calendar-day difference to − from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// WithinEditHorizon reports whether date is within 30 calendar days of today,
// in either direction.
func WithinEditHorizon(date, today time.Time) bool {
	diff := DaysBetween(date, today)
	if diff < 0 {
		diff = -diff
	}
	return diff <= EditHorizonDays
}

// WithinBackEntryHorizon reports whether a manual entry date is acceptable:
// at most 30 days in the past, never after today.
func WithinBackEntryHorizon(date, today time.Time) bool {
	diff := DaysBetween(date, today)
	return diff >= 0 && diff <= BackEntryHorizonDays
}

// WithinDeleteHorizon reports whether a record dated date may still be
// deleted: its check-in date is no more than 7 days before today.
func WithinDeleteHorizon(date, today time.Time) bool {
	return DaysBetween(date, today) <= DeleteHorizonDays
}
