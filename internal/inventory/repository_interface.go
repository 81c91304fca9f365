package inventory

import (
	"context"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

// RepositoryInterface defines the contract for inventory data access
type RepositoryInterface interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error)
	ListItems(ctx context.Context, search string, params pagination.Params) ([]ItemResponse, int, error)
	UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error)
	DeleteItem(ctx context.Context, id int) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
