package complaint

import "context"

type Service interface {
	SubmitComplaint(ctx context.Context, req *SubmitRequest) (*ComplaintResponse, error)
	RespondComplaint(ctx context.Context, req *RespondRequest) (*ComplaintResponse, error)
	GetComplaint(ctx context.Context, id string) (*ComplaintResponse, error)
	GetMyComplaints(ctx context.Context, filter Filter) (*ListResponse, error)
	ListComplaints(ctx context.Context, filter Filter) (*ListResponse, error)
}
