package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/leave"
	"github.com/tracklite/attendance-backend-go/internal/domain/notification"
	"github.com/tracklite/attendance-backend-go/internal/domain/user"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
	"github.com/tracklite/attendance-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.Repository
	user.EmployeeRepository
	notifier notification.Service
}

func NewLeaveService(db *database.DB, leaveRepo leave.Repository, employeeRepo user.EmployeeRepository, notifier notification.Service) leave.Service {
	return &LeaveServiceImpl{
		db:                 db,
		Repository:         leaveRepo,
		EmployeeRepository: employeeRepo,
		notifier:           notifier,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	if roleStr, ok := claims["role"].(string); ok {
		role = user.Role(roleStr)
	}
	return employeeID, role, nil
}

// SubmitLeave implements leave.Service.
func (l *LeaveServiceImpl) SubmitLeave(ctx context.Context, req *leave.SubmitRequest) (*leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nowUTC := time.Now().UTC()

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := l.EmployeeRepository.Exists(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return nil, user.ErrEmployeeNotFound
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	if err := ValidateRange(start, end, req.Reason, nowUTC); err != nil {
		return nil, err
	}

	approved, err := l.Repository.ListApprovedOverlapping(ctx, employeeID, start, end, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave: %w", err)
	}
	if HasConflict(approved, start, end, "") {
		return nil, leave.ErrConflictingLeave
	}

	category := leave.Category(req.Category)
	yearRequests, err := l.Repository.ListApprovedByYear(ctx, employeeID, start.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave for year: %w", err)
	}
	if ExceedsQuota(category, totalDays(start, end), Balances(yearRequests, start.Year())) {
		return nil, leave.ErrQuotaExceeded
	}

	request := &leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Category:   category,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		CreatedAt:  nowUTC,
		UpdatedAt:  nowUTC,
	}
	if err := l.Repository.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	resp := toResponse(request)
	return &resp, nil
}

// UpdateLeave implements leave.Service.
func (l *LeaveServiceImpl) UpdateLeave(ctx context.Context, req *leave.UpdateRequest) (*leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nowUTC := time.Now().UTC()

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	request, err := l.getRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := CanUpdate(request, employeeID); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	if err := ValidateRange(start, end, req.Reason, nowUTC); err != nil {
		return nil, err
	}

	approved, err := l.Repository.ListApprovedOverlapping(ctx, employeeID, start, end, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave: %w", err)
	}
	if HasConflict(approved, start, end, request.ID) {
		return nil, leave.ErrConflictingLeave
	}

	request.StartDate = start
	request.EndDate = end
	request.Reason = req.Reason
	request.UpdatedAt = nowUTC
	if err := l.Repository.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	resp := toResponse(request)
	return &resp, nil
}

// ApproveLeave implements leave.Service.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, req *leave.DecideRequest) (*leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nowUTC := time.Now().UTC()

	deciderID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	request, err := l.getRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := CanDecide(request); err != nil {
		return nil, err
	}

	// Another request may have been approved since this one was
	// created, so the overlap check runs again at decision time,
	// inside the same transaction as the status change.
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		approved, err := l.Repository.ListApprovedOverlapping(txCtx, request.EmployeeID, request.StartDate, request.EndDate, request.ID)
		if err != nil {
			return fmt.Errorf("failed to list overlapping leave: %w", err)
		}
		if HasConflict(approved, request.StartDate, request.EndDate, request.ID) {
			return leave.ErrConflictingLeave
		}

		request.Status = leave.StatusApproved
		request.DecidedBy = &deciderID
		request.DecidedAt = &nowUTC
		request.DecisionNote = req.Note
		request.UpdatedAt = nowUTC
		if err := l.Repository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.notifyDecision(ctx, request)

	resp := toResponse(request)
	return &resp, nil
}

// RejectLeave implements leave.Service.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, req *leave.DecideRequest) (*leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	nowUTC := time.Now().UTC()

	deciderID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	request, err := l.getRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := CanDecide(request); err != nil {
		return nil, err
	}

	request.Status = leave.StatusRejected
	request.DecidedBy = &deciderID
	request.DecidedAt = &nowUTC
	request.DecisionNote = req.Note
	request.UpdatedAt = nowUTC
	if err := l.Repository.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	l.notifyDecision(ctx, request)

	resp := toResponse(request)
	return &resp, nil
}

// CancelLeave implements leave.Service.
func (l *LeaveServiceImpl) CancelLeave(ctx context.Context, id string) (*leave.RequestResponse, error) {
	nowUTC := time.Now().UTC()

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	request, err := l.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CanCancel(request, employeeID, nowUTC); err != nil {
		return nil, err
	}

	request.Status = leave.StatusCancelled
	request.UpdatedAt = nowUTC
	if err := l.Repository.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	resp := toResponse(request)
	return &resp, nil
}

// DeleteLeave implements leave.Service.
func (l *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	nowUTC := time.Now().UTC()

	request, err := l.getRequest(ctx, id)
	if err != nil {
		return err
	}

	if err := CanDelete(request, nowUTC); err != nil {
		return err
	}

	if err := l.Repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}

// GetLeave implements leave.Service.
func (l *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (*leave.RequestResponse, error) {
	employeeID, role, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	request, err := l.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == user.RoleEmployee && request.EmployeeID != employeeID {
		return nil, leave.ErrNotOwner
	}

	resp := toResponse(request)
	return &resp, nil
}

// GetMyLeaves implements leave.Service.
func (l *LeaveServiceImpl) GetMyLeaves(ctx context.Context, filter leave.Filter) (*leave.ListResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID = employeeID
	return l.list(ctx, filter)
}

// ListLeaves implements leave.Service.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.Filter) (*leave.ListResponse, error) {
	return l.list(ctx, filter)
}

// GetMyBalance implements leave.Service.
func (l *LeaveServiceImpl) GetMyBalance(ctx context.Context, year int) (*leave.BalanceResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return l.GetBalance(ctx, employeeID, year)
}

// GetBalance implements leave.Service.
func (l *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string, year int) (*leave.BalanceResponse, error) {
	exists, err := l.EmployeeRepository.Exists(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return nil, user.ErrEmployeeNotFound
	}

	requests, err := l.Repository.ListApprovedByYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave for year: %w", err)
	}

	recent, err := l.Repository.ListRecentByEmployee(ctx, employeeID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leave requests: %w", err)
	}

	recentResponses := make([]leave.RequestResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, toResponse(&recent[i]))
	}

	return &leave.BalanceResponse{
		EmployeeID: employeeID,
		Year:       year,
		Balances:   Balances(requests, year),
		Recent:     recentResponses,
	}, nil
}

// GetStatistics implements leave.Service.
func (l *LeaveServiceImpl) GetStatistics(ctx context.Context) (*leave.StatisticsResponse, error) {
	counts, err := l.Repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests by status: %w", err)
	}

	stats := &leave.StatisticsResponse{
		PendingCount:   counts[leave.StatusPending],
		ApprovedCount:  counts[leave.StatusApproved],
		RejectedCount:  counts[leave.StatusRejected],
		CancelledCount: counts[leave.StatusCancelled],
	}
	stats.TotalRequests = stats.PendingCount + stats.ApprovedCount + stats.RejectedCount + stats.CancelledCount
	return stats, nil
}

// ListUpcoming implements leave.Service.
func (l *LeaveServiceImpl) ListUpcoming(ctx context.Context, days int) ([]leave.RequestResponse, error) {
	nowUTC := time.Now().UTC()
	if days < 1 || days > 90 {
		days = 7
	}

	requests, err := l.Repository.ListUpcomingApproved(ctx, nowUTC, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming leave: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toResponse(&requests[i]))
	}
	return responses, nil
}

func (l *LeaveServiceImpl) list(ctx context.Context, filter leave.Filter) (*leave.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := l.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toResponse(&requests[i]))
	}
	return &leave.ListResponse{
		Requests: responses,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (l *LeaveServiceImpl) getRequest(ctx context.Context, id string) (*leave.Request, error) {
	request, err := l.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

// notifyDecision records a notification for the request owner.
// Delivery is best effort; a failure never rolls back the decision.
func (l *LeaveServiceImpl) notifyDecision(ctx context.Context, request *leave.Request) {
	kind := notification.KindLeaveApproved
	title := "Leave request approved"
	if request.Status == leave.StatusRejected {
		kind = notification.KindLeaveRejected
		title = "Leave request rejected"
	}
	message := fmt.Sprintf("Your %s leave from %s to %s has been %s",
		request.Category,
		request.StartDate.Format("2006-01-02"),
		request.EndDate.Format("2006-01-02"),
		request.Status,
	)
	if err := l.notifier.Notify(ctx, request.EmployeeID, kind, title, message); err != nil {
		slog.Warn("Failed to record leave decision notification", "request_id", request.ID, "error", err)
	}
}

func toResponse(request *leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:                 request.ID,
		EmployeeID:         request.EmployeeID,
		EmployeeName:       request.EmployeeName,
		EmployeeDepartment: request.EmployeeDepartment,
		Category:           request.Category,
		StartDate:          request.StartDate.Format("2006-01-02"),
		EndDate:            request.EndDate.Format("2006-01-02"),
		TotalDays:          request.TotalDays(),
		Reason:             request.Reason,
		Status:             request.Status,
		DecidedBy:          request.DecidedBy,
		DecidedAt:          request.DecidedAt,
		DecisionNote:       request.DecisionNote,
		CreatedAt:          request.CreatedAt,
	}
}
