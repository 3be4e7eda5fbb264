package notification

import "context"

type Service interface {
	// Notify records a notification for the employee. Failures are
	// reported but callers treat delivery as best effort.
	Notify(ctx context.Context, employeeID string, kind Kind, title, message string) error

	GetMyNotifications(ctx context.Context, unreadOnly bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
}
