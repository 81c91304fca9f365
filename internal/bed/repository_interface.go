package bed

import "context"

// RepositoryInterface defines the contract for bed data access
type RepositoryInterface interface {
	CreateBed(ctx context.Context, req CreateBedRequest) (*BedResponse, error)
	ListBeds(ctx context.Context, status, ward string) ([]BedResponse, error)
	CountVacant(ctx context.Context) (int, error)
	UpdateBed(ctx context.Context, id int, req UpdateBedRequest) (*BedResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
