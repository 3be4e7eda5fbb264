package leave

import "context"

type Service interface {
	SubmitLeave(ctx context.Context, req *SubmitRequest) (*RequestResponse, error)
	UpdateLeave(ctx context.Context, req *UpdateRequest) (*RequestResponse, error)
	ApproveLeave(ctx context.Context, req *DecideRequest) (*RequestResponse, error)
	RejectLeave(ctx context.Context, req *DecideRequest) (*RequestResponse, error)
	CancelLeave(ctx context.Context, id string) (*RequestResponse, error)
	DeleteLeave(ctx context.Context, id string) error
	GetLeave(ctx context.Context, id string) (*RequestResponse, error)
	GetMyLeaves(ctx context.Context, filter Filter) (*ListResponse, error)
	ListLeaves(ctx context.Context, filter Filter) (*ListResponse, error)
	GetMyBalance(ctx context.Context, year int) (*BalanceResponse, error)
	GetBalance(ctx context.Context, employeeID string, year int) (*BalanceResponse, error)
	GetStatistics(ctx context.Context) (*StatisticsResponse, error)
	ListUpcoming(ctx context.Context, days int) ([]RequestResponse, error)
}
