package leave

import (
	"time"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
)

// Overlaps reports whether the closed date intervals [aStart, aEnd]
// and [bStart, bEnd] share at least one day. Clock components are
// ignored.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart = dateOnly(aStart)
	aEnd = dateOnly(aEnd)
	bStart = dateOnly(bStart)
	bEnd = dateOnly(bEnd)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// HasConflict reports whether any approved request in candidates,
// other than the one identified by excludeID, overlaps the proposed
// [start, end] range. Pending, rejected and cancelled requests never
// block.
func HasConflict(candidates []leave.Request, start, end time.Time, excludeID string) bool {
	for i := range candidates {
		req := &candidates[i]
		if req.Status != leave.StatusApproved {
			continue
		}
		if excludeID != "" && req.ID == excludeID {
			continue
		}
		if Overlaps(start, end, req.StartDate, req.EndDate) {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
