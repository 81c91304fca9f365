package inventory

import (
	"context"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

// ServiceInterface defines the contract for inventory business logic operations
type ServiceInterface interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error)
	ListItems(ctx context.Context, search string, params pagination.Params) (*PaginatedItemListResponse, error)
	UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error)
	DeleteItem(ctx context.Context, id int) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
