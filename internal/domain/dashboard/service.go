package dashboard

import "context"

type Service interface {
	GetAdminStats(ctx context.Context) (*AdminStats, error)
	GetManagerStats(ctx context.Context) (*ManagerStats, error)
}

type Repository interface {
	CountPresentOn(ctx context.Context, date string, department string) (int64, error)
	CountLateOn(ctx context.Context, date string, department string) (int64, error)
	CountOnLeave(ctx context.Context, date string, department string) (int64, error)
	CountPendingLeaves(ctx context.Context, department string) (int64, error)
	CountPendingComplaints(ctx context.Context) (int64, error)
}
