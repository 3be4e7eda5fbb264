package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, req *Request) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Request, int64, error)

	// ListApprovedOverlapping returns the employee's approved requests
	// whose inclusive date range touches [start, end], excluding the
	// request identified by excludeID when non-empty.
	ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]Request, error)

	// ListApprovedByYear returns the employee's approved requests whose
	// start date falls in the given year.
	ListApprovedByYear(ctx context.Context, employeeID string, year int) ([]Request, error)

	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Request, error)
	ListUpcomingApproved(ctx context.Context, from time.Time, days int) ([]Request, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
