package leave

import (
	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
)

// knownCategories fixes the order balances are reported in.
var knownCategories = []leave.Category{leave.CategoryAnnual, leave.CategorySick}

// ConsumedDays sums the day counts of approved requests whose start
// date falls in year, grouped by category. Requests in any other state
// consume nothing.
func ConsumedDays(requests []leave.Request, year int) map[leave.Category]int {
	consumed := make(map[leave.Category]int)
	for i := range requests {
		req := &requests[i]
		if req.Status != leave.StatusApproved {
			continue
		}
		if req.StartDate.Year() != year {
			continue
		}
		consumed[req.Category] += req.TotalDays()
	}
	return consumed
}

// Balances computes the per-category remainder for year from the
// supplied requests. Remaining never goes below zero even when
// consumption exceeds the quota.
func Balances(requests []leave.Request, year int) []leave.Balance {
	consumed := ConsumedDays(requests, year)

	balances := make([]leave.Balance, 0, len(knownCategories))
	for _, cat := range knownCategories {
		quota := cat.Quota()
		used := consumed[cat]
		remaining := quota - used
		if remaining < 0 {
			remaining = 0
		}
		balances = append(balances, leave.Balance{
			Category:  cat,
			Quota:     quota,
			Used:      used,
			Remaining: remaining,
		})
	}
	return balances
}

// ExceedsQuota reports whether a submission must be refused for lack of
// balance. Only annual leave is refused at submission; a sick request
// past its allowance still reaches the approver, who decides.
func ExceedsQuota(category leave.Category, requestedDays int, balances []leave.Balance) bool {
	if category != leave.CategoryAnnual {
		return false
	}
	return requestedDays > Remaining(balances, category)
}

// Remaining returns the remainder for one category out of a computed
// balance set, falling back to the category's full quota when the set
// does not mention it.
func Remaining(balances []leave.Balance, category leave.Category) int {
	for _, b := range balances {
		if b.Category == category {
			return b.Remaining
		}
	}
	return category.Quota()
}
