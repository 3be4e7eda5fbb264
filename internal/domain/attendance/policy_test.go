package attendance

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestWithinCheckInWindow(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before opening", at(4, 59), false},
		{"at opening", at(5, 0), true},
		{"mid morning", at(8, 30), true},
		{"just before close", at(11, 59), true},
		{"at close is excluded", at(12, 0), false},
		{"afternoon", at(15, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WithinCheckInWindow(c.t); got != c.want {
				t.Errorf("WithinCheckInWindow(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestLateAndEarlyThresholds(t *testing.T) {
	if IsLateCheckIn(at(9, 0)) {
		t.Error("09:00 exactly must not be late")
	}
	if !IsLateCheckIn(at(9, 1)) {
		t.Error("09:01 must be late")
	}
	if !IsEarlyCheckOut(at(17, 29)) {
		t.Error("17:29 must be an early leave")
	}
	if IsEarlyCheckOut(at(17, 30)) {
		t.Error("17:30 exactly must not be an early leave")
	}
}

func TestManualClockWindows(t *testing.T) {
	if WithinManualCheckInClock(at(3, 59)) {
		t.Error("03:59 is before the manual check-in window")
	}
	if !WithinManualCheckInClock(at(4, 0)) {
		t.Error("04:00 opens the manual check-in window")
	}
	if WithinManualCheckOutClock(at(5, 59)) {
		t.Error("05:59 is before the manual check-out window")
	}
	if !WithinManualCheckOutClock(at(6, 0)) {
		t.Error("06:00 opens the manual check-out window")
	}
	if !WithinManualCheckInClock(at(23, 59)) || !WithinManualCheckOutClock(at(23, 59)) {
		t.Error("23:59 is within both manual windows")
	}
}

func TestWithinWorkDurationBounds(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want bool
	}{
		{29 * time.Minute, false},
		{30 * time.Minute, true},
		{8 * time.Hour, true},
		{16 * time.Hour, true},
		{16*time.Hour + time.Minute, false},
	}
	for _, c := range cases {
		if got := WithinWorkDurationBounds(c.d); got != c.want {
			t.Errorf("WithinWorkDurationBounds(%v) = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestHorizons(t *testing.T) {
	today := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	if !WithinEditHorizon(today.AddDate(0, 0, -30), today) {
		t.Error("30 days back is still editable")
	}
	if WithinEditHorizon(today.AddDate(0, 0, -31), today) {
		t.Error("31 days back is outside the edit horizon")
	}
	if !WithinEditHorizon(today.AddDate(0, 0, 30), today) {
		t.Error("30 days ahead is still editable")
	}
	if WithinEditHorizon(today.AddDate(0, 0, 31), today) {
		t.Error("31 days ahead is outside the edit horizon")
	}

	if !WithinBackEntryHorizon(today, today) {
		t.Error("today is a valid back-entry date")
	}
	if WithinBackEntryHorizon(today.AddDate(0, 0, 1), today) {
		t.Error("future dates can never be back-entered")
	}
	if WithinBackEntryHorizon(today.AddDate(0, 0, -31), today) {
		t.Error("31 days back is outside the back-entry horizon")
	}

	if !WithinDeleteHorizon(today.AddDate(0, 0, -7), today) {
		t.Error("7 days old is still deletable")
	}
	if WithinDeleteHorizon(today.AddDate(0, 0, -8), today) {
		t.Error("8 days old is too old to delete")
	}
}

func TestDaysBetweenIgnoresClock(t *testing.T) {
	a := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}
	if !SameDate(b, at(8, 0)) {
		t.Error("SameDate must ignore the clock")
	}
}
