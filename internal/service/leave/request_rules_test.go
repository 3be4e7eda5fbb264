package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func pending(owner string, start, end time.Time) *leave.Request {
	return &leave.Request{
		ID:         "req-1",
		EmployeeID: owner,
		Category:   leave.CategoryAnnual,
		StartDate:  start,
		EndDate:    end,
		Status:     leave.StatusPending,
	}
}

func withStatus(req *leave.Request, status leave.Status) *leave.Request {
	req.Status = status
	return req
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		reason  string
		wantErr error
	}{
		{"valid future range", day(3, 10), day(3, 12), "family event", nil},
		{"single day", day(3, 10), day(3, 10), "appointment", nil},
		{"starts today", day(3, 1), day(3, 2), "urgent", nil},
		{"end before start", day(3, 12), day(3, 10), "family event", leave.ErrInvalidRange},
		{"exactly thirty days", day(3, 10), day(4, 8), "sabbatical", nil},
		{"thirty one days", day(3, 10), day(4, 9), "sabbatical", leave.ErrRangeTooLong},
		{"starts yesterday", day(2, 28), day(3, 2), "late filing", leave.ErrPastStartDate},
		{"no reason", day(3, 10), day(3, 12), "", leave.ErrMissingReason},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end, tt.reason, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCanUpdate(t *testing.T) {
	req := pending("emp-1", day(3, 10), day(3, 12))

	assert.NoError(t, CanUpdate(req, "emp-1"))
	assert.ErrorIs(t, CanUpdate(req, "emp-2"), leave.ErrNotOwner)

	for _, status := range []leave.Status{leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled} {
		assert.ErrorIs(t, CanUpdate(withStatus(pending("emp-1", day(3, 10), day(3, 12)), status), "emp-1"), leave.ErrNotPending)
	}
}

func TestCanDecide(t *testing.T) {
	assert.NoError(t, CanDecide(pending("emp-1", day(3, 10), day(3, 12))))

	// A decision lands exactly once; every later attempt bounces.
	for _, status := range []leave.Status{leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled} {
		req := withStatus(pending("emp-1", day(3, 10), day(3, 12)), status)
		assert.ErrorIs(t, CanDecide(req), leave.ErrNotPending)
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		req     *leave.Request
		owner   string
		wantErr error
	}{
		{"pending by owner", pending("emp-1", day(3, 10), day(3, 12)), "emp-1", nil},
		{"pending past start still cancellable", pending("emp-1", day(2, 20), day(2, 22)), "emp-1", nil},
		{"not the owner", pending("emp-1", day(3, 10), day(3, 12)), "emp-2", leave.ErrNotOwner},
		{"double cancel", withStatus(pending("emp-1", day(3, 10), day(3, 12)), leave.StatusCancelled), "emp-1", leave.ErrAlreadyCancelled},
		{"approved future leave", withStatus(pending("emp-1", day(3, 10), day(3, 12)), leave.StatusApproved), "emp-1", nil},
		{"approved starting today", withStatus(pending("emp-1", day(3, 1), day(3, 3)), leave.StatusApproved), "emp-1", leave.ErrAlreadyStarted},
		{"approved already running", withStatus(pending("emp-1", day(2, 27), day(3, 3)), leave.StatusApproved), "emp-1", leave.ErrAlreadyStarted},
		{"rejected can still be cancelled", withStatus(pending("emp-1", day(3, 10), day(3, 12)), leave.StatusRejected), "emp-1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCancel(tt.req, tt.owner, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete(pending("emp-1", day(3, 10), day(3, 12)), testNow))
	assert.NoError(t, CanDelete(withStatus(pending("emp-1", day(3, 10), day(3, 12)), leave.StatusApproved), testNow))
	assert.NoError(t, CanDelete(withStatus(pending("emp-1", day(2, 20), day(2, 22)), leave.StatusRejected), testNow))

	started := withStatus(pending("emp-1", day(3, 1), day(3, 3)), leave.StatusApproved)
	assert.ErrorIs(t, CanDelete(started, testNow), leave.ErrApprovedAndStarted)
}
