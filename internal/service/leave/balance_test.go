package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
)

func yearRequest(category leave.Category, status leave.Status, start, end time.Time) leave.Request {
	return leave.Request{
		ID:         "req",
		EmployeeID: "emp-1",
		Category:   category,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
	}
}

func TestConsumedDays(t *testing.T) {
	requests := []leave.Request{
		yearRequest(leave.CategoryAnnual, leave.StatusApproved, day(2, 3), day(2, 7)),  // 5 days
		yearRequest(leave.CategoryAnnual, leave.StatusApproved, day(6, 10), day(6, 10)), // 1 day
		yearRequest(leave.CategorySick, leave.StatusApproved, day(3, 1), day(3, 2)),     // 2 days
		yearRequest(leave.CategoryAnnual, leave.StatusPending, day(7, 1), day(7, 5)),    // ignored
		yearRequest(leave.CategoryAnnual, leave.StatusRejected, day(8, 1), day(8, 5)),   // ignored
	}

	consumed := ConsumedDays(requests, 2025)
	assert.Equal(t, 6, consumed[leave.CategoryAnnual])
	assert.Equal(t, 2, consumed[leave.CategorySick])
}

func TestConsumedDaysKeyedByStartYear(t *testing.T) {
	requests := []leave.Request{
		yearRequest(leave.CategoryAnnual, leave.StatusApproved,
			time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, 0, ConsumedDays(requests, 2025)[leave.CategoryAnnual])
	assert.Equal(t, 4, ConsumedDays(requests, 2024)[leave.CategoryAnnual])
}

func TestBalances(t *testing.T) {
	requests := []leave.Request{
		yearRequest(leave.CategoryAnnual, leave.StatusApproved, day(2, 1), day(2, 10)), // 10 days
	}

	balances := Balances(requests, 2025)

	annual := balances[0]
	assert.Equal(t, leave.CategoryAnnual, annual.Category)
	assert.Equal(t, 12, annual.Quota)
	assert.Equal(t, 10, annual.Used)
	assert.Equal(t, 2, annual.Remaining)

	sick := balances[1]
	assert.Equal(t, leave.CategorySick, sick.Category)
	assert.Equal(t, 30, sick.Quota)
	assert.Equal(t, 0, sick.Used)
	assert.Equal(t, 30, sick.Remaining)
}

func TestBalancesNeverNegative(t *testing.T) {
	requests := []leave.Request{
		yearRequest(leave.CategoryAnnual, leave.StatusApproved, day(1, 1), day(1, 20)), // 20 > quota 12
	}

	balances := Balances(requests, 2025)
	assert.Equal(t, 20, balances[0].Used)
	assert.Equal(t, 0, balances[0].Remaining)
}

func TestRemaining(t *testing.T) {
	balances := Balances(nil, 2025)
	assert.Equal(t, 12, Remaining(balances, leave.CategoryAnnual))
	assert.Equal(t, 30, Remaining(balances, leave.CategorySick))

	// A category absent from the set falls back to its full quota.
	assert.Equal(t, 12, Remaining(nil, leave.CategoryAnnual))
}

// With 10 of 12 annual days consumed, a 3 day request overruns the 2
// remaining and must be refused at submission.
func TestQuotaRefusalScenario(t *testing.T) {
	requests := []leave.Request{
		yearRequest(leave.CategoryAnnual, leave.StatusApproved, day(2, 1), day(2, 10)),
	}

	balances := Balances(requests, 2025)
	requested := totalDays(day(3, 10), day(3, 12))

	assert.Equal(t, 2, Remaining(balances, leave.CategoryAnnual))
	assert.Equal(t, 3, requested)
	assert.True(t, ExceedsQuota(leave.CategoryAnnual, requested, balances))
}

// Only annual leave is quota-refused at submission. A sick request past
// the sick allowance still goes through to the approver.
func TestSickLeaveNotQuotaRefused(t *testing.T) {
	requests := []leave.Request{
		yearRequest(leave.CategorySick, leave.StatusApproved, day(1, 1), day(1, 28)), // 28 of 30
	}

	balances := Balances(requests, 2025)
	requested := totalDays(day(3, 10), day(3, 14)) // 5 days, only 2 remain

	assert.Equal(t, 2, Remaining(balances, leave.CategorySick))
	assert.False(t, ExceedsQuota(leave.CategorySick, requested, balances))

	// The same overrun on annual leave is refused.
	assert.True(t, ExceedsQuota(leave.CategoryAnnual, 5,
		Balances([]leave.Request{
			yearRequest(leave.CategoryAnnual, leave.StatusApproved, day(1, 1), day(1, 10)),
		}, 2025)))
}
