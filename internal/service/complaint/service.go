package complaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/complaint"
	"github.com/tracklite/attendance-backend-go/internal/domain/notification"
	"github.com/tracklite/attendance-backend-go/internal/domain/user"
)

type ComplaintServiceImpl struct {
	complaint.Repository
	notifier notification.Service
}

func NewComplaintService(repo complaint.Repository, notifier notification.Service) complaint.Service {
	return &ComplaintServiceImpl{
		Repository: repo,
		notifier:   notifier,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// SubmitComplaint implements complaint.Service.
func (c *ComplaintServiceImpl) SubmitComplaint(ctx context.Context, req *complaint.SubmitRequest) (*complaint.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nowUTC := time.Now().UTC()

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record := &complaint.Complaint{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Subject:    req.Subject,
		Message:    req.Message,
		Status:     complaint.StatusPending,
		CreatedAt:  nowUTC,
		UpdatedAt:  nowUTC,
	}
	if err := c.Repository.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	resp := toResponse(record)
	return &resp, nil
}

// RespondComplaint implements complaint.Service.
func (c *ComplaintServiceImpl) RespondComplaint(ctx context.Context, req *complaint.RespondRequest) (*complaint.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nowUTC := time.Now().UTC()

	handlerID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := c.getComplaint(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if record.Status == complaint.StatusResolved {
		return nil, complaint.ErrAlreadyResolved
	}

	record.Response = &req.Response
	record.HandledBy = &handlerID
	record.HandledAt = &nowUTC
	record.Status = complaint.StatusProcessed
	if req.Resolve {
		record.Status = complaint.StatusResolved
	}
	record.UpdatedAt = nowUTC
	if err := c.Repository.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}

	err = c.notifier.Notify(ctx, record.EmployeeID, notification.KindComplaintReply,
		"Complaint update", fmt.Sprintf("Your complaint %q has a new response", record.Subject))
	if err != nil {
		slog.Warn("Failed to record complaint reply notification", "complaint_id", record.ID, "error", err)
	}

	resp := toResponse(record)
	return &resp, nil
}

// GetComplaint implements complaint.Service.
func (c *ComplaintServiceImpl) GetComplaint(ctx context.Context, id string) (*complaint.ComplaintResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)

	record, err := c.getComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role(role) == user.RoleEmployee && record.EmployeeID != employeeID {
		return nil, complaint.ErrNotOwner
	}

	resp := toResponse(record)
	return &resp, nil
}

// GetMyComplaints implements complaint.Service.
func (c *ComplaintServiceImpl) GetMyComplaints(ctx context.Context, filter complaint.Filter) (*complaint.ListResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID = employeeID
	return c.list(ctx, filter)
}

// ListComplaints implements complaint.Service.
func (c *ComplaintServiceImpl) ListComplaints(ctx context.Context, filter complaint.Filter) (*complaint.ListResponse, error) {
	return c.list(ctx, filter)
}

func (c *ComplaintServiceImpl) list(ctx context.Context, filter complaint.Filter) (*complaint.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := c.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	responses := make([]complaint.ComplaintResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toResponse(&records[i]))
	}
	return &complaint.ListResponse{
		Complaints: responses,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (c *ComplaintServiceImpl) getComplaint(ctx context.Context, id string) (*complaint.Complaint, error) {
	record, err := c.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, complaint.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return record, nil
}

func toResponse(record *complaint.Complaint) complaint.ComplaintResponse {
	return complaint.ComplaintResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Subject:      record.Subject,
		Message:      record.Message,
		Status:       record.Status,
		Response:     record.Response,
		HandledBy:    record.HandledBy,
		HandledAt:    record.HandledAt,
		CreatedAt:    record.CreatedAt,
	}
}
