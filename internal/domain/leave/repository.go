package leave

import "context"

type LeaveRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Delete(ctx context.Context, id string) error
}
