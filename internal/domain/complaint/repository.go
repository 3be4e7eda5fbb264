package complaint

import "context"

type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id string) (*Complaint, error)
	Update(ctx context.Context, c *Complaint) error
	List(ctx context.Context, filter Filter) ([]Complaint, int64, error)
}
