package attendance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracklite/attendance-backend-go/internal/domain/attendance"
)

func ts(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func open(checkIn time.Time) *attendance.Attendance {
	return &attendance.Attendance{ID: "rec-1", EmployeeID: "emp-1", CheckIn: checkIn}
}

func closed(checkIn, checkOut time.Time) *attendance.Attendance {
	a := open(checkIn)
	a.CheckOut = &checkOut
	return a
}

func TestValidateCheckIn(t *testing.T) {
	tests := []struct {
		name     string
		existing *attendance.Attendance
		now      time.Time
		wantErr  error
	}{
		{"within window", nil, ts(10, 8, 30), nil},
		{"at opening", nil, ts(10, 5, 0), nil},
		{"before opening", nil, ts(10, 4, 59), attendance.ErrOutOfWindow},
		{"at noon", nil, ts(10, 12, 0), attendance.ErrOutOfWindow},
		{"open record exists", open(ts(10, 7, 0)), ts(10, 8, 30), attendance.ErrDuplicateCheckIn},
		{"closed record exists", closed(ts(10, 7, 0), ts(10, 18, 0)), ts(10, 8, 30), attendance.ErrDuplicateCheckIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckIn(tt.existing, tt.now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// The window is judged against the submission clock while the late flag
// is judged against the stored check-in. A record stored at 08:30 but
// submitted at 13:00 is rejected even though 08:30 is inside the window.
func TestCheckIn_WindowUsesSubmissionClock(t *testing.T) {
	submittedAt := ts(10, 13, 0)
	err := ValidateCheckIn(nil, submittedAt)
	assert.ErrorIs(t, err, attendance.ErrOutOfWindow)

	// The flag, by contrast, reads the stored clock.
	assert.False(t, attendance.IsLateCheckIn(ts(10, 8, 30)))
	assert.True(t, attendance.IsLateCheckIn(ts(10, 9, 30)))
}

func TestValidateCheckOut(t *testing.T) {
	checkIn := ts(10, 8, 30)
	tests := []struct {
		name    string
		record  *attendance.Attendance
		out     time.Time
		wantErr error
	}{
		{"normal close", open(checkIn), ts(10, 17, 0), nil},
		{"no record", nil, ts(10, 17, 0), attendance.ErrRecordNotFound},
		{"already closed", closed(checkIn, ts(10, 17, 0)), ts(10, 18, 0), attendance.ErrRecordNotFound},
		{"equal to check-in", open(checkIn), checkIn, attendance.ErrInvalidOrder},
		{"before check-in", open(checkIn), ts(10, 8, 0), attendance.ErrInvalidOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckOut(tt.record, tt.out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckOutDurationAndFlags(t *testing.T) {
	// Check-in 08:30, check-out 17:00: success, 8h30m, early leave.
	record := open(ts(10, 8, 30))
	out := ts(10, 17, 0)

	err := ValidateCheckOut(record, out)
	assert.NoError(t, err)

	record.CheckOut = &out
	d := record.Duration()
	if assert.NotNil(t, d) {
		assert.Equal(t, 8*time.Hour+30*time.Minute, *d)
	}
	assert.False(t, attendance.IsLateCheckIn(record.CheckIn))
	assert.True(t, attendance.IsEarlyCheckOut(out))
	assert.True(t, *d >= attendance.FullDayDuration)
}

func TestValidateManualEntry(t *testing.T) {
	now := ts(20, 10, 0)
	outAt := func(day, hour, min int) *time.Time {
		v := ts(day, hour, min)
		return &v
	}

	tests := []struct {
		name     string
		existing *attendance.Attendance
		checkIn  time.Time
		checkOut *time.Time
		reason   string
		wantErr  error
	}{
		{"back-dated full day", nil, ts(15, 8, 0), outAt(15, 17, 45), "forgot badge", nil},
		{"check-in only", nil, ts(15, 8, 0), nil, "forgot badge", nil},
		{"empty reason", nil, ts(15, 8, 0), outAt(15, 17, 45), "", attendance.ErrMissingReason},
		{"oversized reason", nil, ts(15, 8, 0), outAt(15, 17, 45), strings.Repeat("x", MaxManualReasonLength+1), attendance.ErrMissingReason},
		{"duplicate date", open(ts(15, 7, 0)), ts(15, 8, 0), nil, "forgot badge", attendance.ErrDuplicateCheckIn},
		{"future dated", nil, ts(21, 8, 0), nil, "forgot badge", attendance.ErrDateOutOfHorizon},
		{"older than horizon", nil, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), nil, "forgot badge", attendance.ErrDateOutOfHorizon},
		{"check-in before 04:00", nil, ts(15, 3, 30), nil, "forgot badge", attendance.ErrOutOfWindow},
		{"check-out before 06:00", nil, ts(15, 4, 30), outAt(15, 5, 30), "forgot badge", attendance.ErrOutOfWindow},
		{"out before in", nil, ts(15, 10, 0), outAt(15, 9, 0), "forgot badge", attendance.ErrInvalidOrder},
		{"too short", nil, ts(15, 8, 0), outAt(15, 8, 20), "forgot badge", attendance.ErrDurationOutOfBounds},
		{"too long", nil, ts(15, 6, 0), outAt(15, 22, 30), "forgot badge", attendance.ErrDurationOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManualEntry(tt.existing, tt.checkIn, tt.checkOut, tt.reason, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEdit(t *testing.T) {
	now := ts(20, 10, 0)
	record := closed(ts(15, 8, 0), ts(15, 17, 45))
	outAt := func(day, hour, min int) *time.Time {
		v := ts(day, hour, min)
		return &v
	}

	assert.NoError(t, ValidateEdit(record, ts(15, 8, 30), outAt(15, 17, 0), now))
	// Clearing the check-out reopens the record.
	assert.NoError(t, ValidateEdit(record, ts(15, 8, 30), nil, now))

	assert.ErrorIs(t, ValidateEdit(nil, ts(15, 8, 30), nil, now), attendance.ErrRecordNotFound)
	assert.ErrorIs(t, ValidateEdit(record, ts(15, 9, 0), outAt(15, 9, 0), now), attendance.ErrInvalidOrder)
	assert.ErrorIs(t, ValidateEdit(record, ts(15, 3, 0), nil, now), attendance.ErrOutOfWindow)

	stale := closed(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 17, 45, 0, 0, time.UTC))
	assert.ErrorIs(t, ValidateEdit(stale, ts(15, 8, 30), nil, now), attendance.ErrDateOutOfHorizon)
}

func TestValidateDelete(t *testing.T) {
	now := ts(20, 10, 0)

	assert.NoError(t, ValidateDelete(closed(ts(14, 8, 0), ts(14, 17, 45)), now))
	assert.ErrorIs(t, ValidateDelete(nil, now), attendance.ErrRecordNotFound)

	// A record checked in 10 days ago is past the deletion horizon.
	old := closed(ts(10, 8, 0), ts(10, 17, 45))
	assert.ErrorIs(t, ValidateDelete(old, now), attendance.ErrRecordTooOld)
}
