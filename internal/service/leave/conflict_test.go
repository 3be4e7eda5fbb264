package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
)

func day(month, d int) time.Time {
	return time.Date(2025, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func approved(id string, start, end time.Time) leave.Request {
	return leave.Request{
		ID:         id,
		EmployeeID: "emp-1",
		Category:   leave.CategoryAnnual,
		StartDate:  start,
		EndDate:    end,
		Status:     leave.StatusApproved,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical ranges", day(4, 1), day(4, 5), day(4, 1), day(4, 5), true},
		{"partial overlap", day(4, 1), day(4, 5), day(4, 3), day(4, 6), true},
		{"contained", day(4, 1), day(4, 10), day(4, 3), day(4, 6), true},
		{"touching at end", day(4, 1), day(4, 5), day(4, 5), day(4, 8), true},
		{"adjacent days", day(4, 1), day(4, 5), day(4, 6), day(4, 8), false},
		{"disjoint", day(4, 1), day(4, 5), day(4, 20), day(4, 25), false},
		{"single day inside", day(4, 3), day(4, 3), day(4, 1), day(4, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)
			// Symmetric in its two intervals.
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlapsIsReflexive(t *testing.T) {
	s, e := day(4, 1), day(4, 5)
	assert.True(t, Overlaps(s, e, s, e))
}

func TestHasConflict(t *testing.T) {
	existing := []leave.Request{
		approved("req-1", day(4, 1), day(4, 5)),
	}

	// The scenario from the April calendar: approved Apr 1-5, new
	// request Apr 3-6 collides.
	assert.True(t, HasConflict(existing, day(4, 3), day(4, 6), ""))

	assert.False(t, HasConflict(existing, day(4, 6), day(4, 10), ""))
	assert.True(t, HasConflict(existing, day(4, 1), day(4, 5), ""))
}

func TestHasConflictIgnoresNonApproved(t *testing.T) {
	requests := []leave.Request{
		{ID: "p", StartDate: day(4, 1), EndDate: day(4, 5), Status: leave.StatusPending},
		{ID: "r", StartDate: day(4, 1), EndDate: day(4, 5), Status: leave.StatusRejected},
		{ID: "c", StartDate: day(4, 1), EndDate: day(4, 5), Status: leave.StatusCancelled},
	}
	assert.False(t, HasConflict(requests, day(4, 1), day(4, 5), ""))
}

func TestHasConflictExcludesSelf(t *testing.T) {
	existing := []leave.Request{
		approved("req-1", day(4, 1), day(4, 5)),
	}
	assert.False(t, HasConflict(existing, day(4, 1), day(4, 5), "req-1"))
	assert.True(t, HasConflict(existing, day(4, 1), day(4, 5), "req-2"))
}
