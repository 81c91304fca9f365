package visit

import (
	"context"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

// RepositoryInterface defines the contract for visit data access
type RepositoryInterface interface {
	CreateVisit(ctx context.Context, req CreateVisitRequest) (*VisitResponse, error)
	ListVisits(ctx context.Context, params pagination.Params) ([]VisitResponse, int, error)
	GetVisit(ctx context.Context, id int) (*VisitResponse, error)
	UpdateVisit(ctx context.Context, id int, req UpdateVisitRequest) (*VisitResponse, error)
	DeleteVisit(ctx context.Context, id int) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
