package visit

import (
	"context"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

// ServiceInterface defines the contract for visit business logic operations
type ServiceInterface interface {
	CreateVisit(ctx context.Context, req CreateVisitRequest) (*VisitResponse, error)
	ListVisits(ctx context.Context, params pagination.Params) (*PaginatedVisitListResponse, error)
	GetVisit(ctx context.Context, id int) (*VisitResponse, error)
	UpdateVisit(ctx context.Context, id int, req UpdateVisitRequest) (*VisitResponse, error)
	DeleteVisit(ctx context.Context, id int) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
