package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	l.id, l.employee_id, l.category, l.start_date, l.end_date, l.reason,
	l.status, l.decided_by, l.decided_at, l.decision_note, l.created_at, l.updated_at
`

// Create implements leave.Repository.
func (r *leaveRequestRepository) Create(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, category, start_date, end_date, reason, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := q.Exec(ctx, query,
		req.ID, req.EmployeeID, req.Category, req.StartDate, req.EndDate,
		req.Reason, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	return nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`, leaveRequestColumns)

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Category, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.DecidedBy, &req.DecidedAt, &req.DecisionNote, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeDepartment,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Update implements leave.Repository.
func (r *leaveRequestRepository) Update(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET start_date = $2, end_date = $3, reason = $4, status = $5,
			decided_by = $6, decided_at = $7, decision_note = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.StartDate, req.EndDate, req.Reason, req.Status,
		req.DecidedBy, req.DecidedAt, req.DecisionNote, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements leave.Repository.
func (r *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List implements leave.Repository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.Filter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != "" {
		addCondition("l.employee_id = $%d", filter.EmployeeID)
	}
	if filter.Department != "" {
		addCondition("e.department = $%d", filter.Department)
	}
	if filter.Status != "" {
		addCondition("l.status = $%d", filter.Status)
	}
	if filter.Category != "" {
		addCondition("l.category = $%d", filter.Category)
	}
	if filter.From != nil {
		addCondition("l.end_date >= $%d::date", *filter.From)
	}
	if filter.To != nil {
		addCondition("l.start_date <= $%d::date", *filter.To)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		%s
	`, where)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s, e.name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanLeaveRequestsWithEmployee(rows)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListApprovedOverlapping implements leave.Repository.
func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests l
		WHERE l.employee_id = $1
		  AND l.status = 'approved'
		  AND l.start_date <= $3::date
		  AND l.end_date >= $2::date
		  AND ($4 = '' OR l.id <> $4)
		ORDER BY l.start_date
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, employeeID, start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListApprovedByYear implements leave.Repository.
func (r *leaveRequestRepository) ListApprovedByYear(ctx context.Context, employeeID string, year int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests l
		WHERE l.employee_id = $1
		  AND l.status = 'approved'
		  AND EXTRACT(YEAR FROM l.start_date) = $2
		ORDER BY l.start_date
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListRecentByEmployee implements leave.Repository.
func (r *leaveRequestRepository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests l
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListUpcomingApproved implements leave.Repository.
func (r *leaveRequestRepository) ListUpcomingApproved(ctx context.Context, from time.Time, days int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.name, e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'approved'
		  AND l.start_date >= $1::date
		  AND l.start_date <= $1::date + $2 * INTERVAL '1 day'
		ORDER BY l.start_date
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, from, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequestsWithEmployee(rows)
}

// CountByStatus implements leave.Repository.
func (r *leaveRequestRepository) CountByStatus(ctx context.Context) (map[leave.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM leave_requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[leave.Status]int64)
	for rows.Next() {
		var status leave.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Category, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.DecidedBy, &req.DecidedAt, &req.DecisionNote, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func scanLeaveRequestsWithEmployee(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Category, &req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.DecidedBy, &req.DecidedAt, &req.DecisionNote, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeDepartment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
