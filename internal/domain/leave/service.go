package leave

import "context"

// LeaveService defines business logic for leave and mission records
type LeaveService interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
