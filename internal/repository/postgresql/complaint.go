package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/complaint"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
)

type complaintRepository struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) complaint.Repository {
	return &complaintRepository{db: db}
}

// Create implements complaint.Repository.
func (r *complaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO complaints (
			id, employee_id, subject, message, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := q.Exec(ctx, query,
		c.ID, c.EmployeeID, c.Subject, c.Message, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID implements complaint.Repository.
func (r *complaintRepository) GetByID(ctx context.Context, id string) (*complaint.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.subject, c.message, c.status,
			   c.response, c.handled_by, c.handled_at, c.created_at, c.updated_at, e.name
		FROM complaints c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	var record complaint.Complaint
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Subject, &record.Message, &record.Status,
		&record.Response, &record.HandledBy, &record.HandledAt, &record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update implements complaint.Repository.
func (r *complaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE complaints
		SET status = $2, response = $3, handled_by = $4, handled_at = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, c.ID, c.Status, c.Response, c.HandledBy, c.HandledAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List implements complaint.Repository.
func (r *complaintRepository) List(ctx context.Context, filter complaint.Filter) ([]complaint.Complaint, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("c.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM complaints c %s`, where)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT c.id, c.employee_id, c.subject, c.message, c.status,
			   c.response, c.handled_by, c.handled_at, c.created_at, c.updated_at, e.name
		FROM complaints c
		JOIN employees e ON e.id = c.employee_id
		%s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	var complaints []complaint.Complaint
	for rows.Next() {
		var record complaint.Complaint
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Subject, &record.Message, &record.Status,
			&record.Response, &record.HandledBy, &record.HandledAt, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, record)
	}
	return complaints, total, rows.Err()
}
