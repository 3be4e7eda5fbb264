package postgresql

import (
	"context"
	"fmt"

	"github.com/tracklite/attendance-backend-go/internal/domain/dashboard"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

// CountPresentOn implements dashboard.Repository.
func (r *dashboardRepository) CountPresentOn(ctx context.Context, date string, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.check_in::date = $1::date
		  AND ($2 = '' OR e.department = $2)
	`

	var count int64
	if err := q.QueryRow(ctx, query, date, department).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count present employees: %w", err)
	}
	return count, nil
}

// CountLateOn implements dashboard.Repository.
func (r *dashboardRepository) CountLateOn(ctx context.Context, date string, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.check_in::date = $1::date
		  AND a.check_in::time > TIME '09:00'
		  AND ($2 = '' OR e.department = $2)
	`

	var count int64
	if err := q.QueryRow(ctx, query, date, department).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count late check-ins: %w", err)
	}
	return count, nil
}

// CountOnLeave implements dashboard.Repository.
func (r *dashboardRepository) CountOnLeave(ctx context.Context, date string, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT l.employee_id)
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'approved'
		  AND l.start_date <= $1::date
		  AND l.end_date >= $1::date
		  AND ($2 = '' OR e.department = $2)
	`

	var count int64
	if err := q.QueryRow(ctx, query, date, department).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees on leave: %w", err)
	}
	return count, nil
}

// CountPendingLeaves implements dashboard.Repository.
func (r *dashboardRepository) CountPendingLeaves(ctx context.Context, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'pending'
		  AND ($1 = '' OR e.department = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, department).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}

// CountPendingComplaints implements dashboard.Repository.
func (r *dashboardRepository) CountPendingComplaints(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM complaints WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending complaints: %w", err)
	}
	return count, nil
}
