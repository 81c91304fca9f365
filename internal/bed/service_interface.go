package bed

import "context"

// ServiceInterface defines the contract for bed business logic operations
type ServiceInterface interface {
	CreateBed(ctx context.Context, req CreateBedRequest) (*BedResponse, error)
	ListBeds(ctx context.Context, status, ward string) (*BedListResponse, error)
	UpdateBed(ctx context.Context, id int, req UpdateBedRequest) (*BedResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
