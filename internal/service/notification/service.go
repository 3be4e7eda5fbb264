package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	notification.Repository
}

func NewNotificationService(repo notification.Repository) notification.Service {
	return &NotificationServiceImpl{Repository: repo}
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

// Notify implements notification.Service.
func (n *NotificationServiceImpl) Notify(ctx context.Context, employeeID string, kind notification.Kind, title, message string) error {
	record := &notification.Notification{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Kind:       kind,
		Title:      title,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := n.Repository.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetMyNotifications implements notification.Service.
func (n *NotificationServiceImpl) GetMyNotifications(ctx context.Context, unreadOnly bool, limit int) ([]notification.Notification, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	records, err := n.Repository.ListByEmployee(ctx, employeeID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return records, nil
}

// MarkRead implements notification.Service.
func (n *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := n.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if record.EmployeeID != employeeID {
		return notification.ErrNotOwner
	}

	if err := n.Repository.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead implements notification.Service.
func (n *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := n.Repository.MarkAllRead(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// CountUnread implements notification.Service.
func (n *NotificationServiceImpl) CountUnread(ctx context.Context) (int64, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	count, err := n.Repository.CountUnread(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
