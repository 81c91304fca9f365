package inventory

import "github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"

// CreateItemRequest represents the request to add a stock item. Quantity
// defaults to zero and is not bounded below.
type CreateItemRequest struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// UpdateItemRequest represents the request to edit a stock item
type UpdateItemRequest struct {
	ItemName *string `json:"item_name,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
}

// ItemResponse represents the stock item data returned to clients
type ItemResponse struct {
	ID       int    `json:"id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// PaginatedItemListResponse wraps an inventory page with metadata
type PaginatedItemListResponse struct {
	Success    bool            `json:"success"`
	Items      []ItemResponse  `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}
