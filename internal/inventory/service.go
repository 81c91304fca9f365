package inventory

import (
	"context"
	"fmt"
	"log"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	if req.ItemName == "" {
		return nil, ErrMissingName
	}
	if req.Unit == "" {
		return nil, ErrMissingUnit
	}

	item, err := s.repo.CreateItem(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.publishUpdated(ctx, item)
	return item, nil
}

func (s *Service) ListItems(ctx context.Context, search string, params pagination.Params) (*PaginatedItemListResponse, error) {
	params.Validate()

	items, total, err := s.repo.ListItems(ctx, search, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &PaginatedItemListResponse{
		Success:    true,
		Items:      items,
		Pagination: params.CalculateMeta(total),
	}, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error) {
	if req.ItemName != nil && *req.ItemName == "" {
		return nil, ErrMissingName
	}
	if req.Unit != nil && *req.Unit == "" {
		return nil, ErrMissingUnit
	}

	item, err := s.repo.UpdateItem(ctx, id, req)
	if err != nil {
		if err == ErrItemNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.publishUpdated(ctx, item)
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		if err == ErrItemNotFound {
			return err
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (s *Service) publishUpdated(ctx context.Context, item *ItemResponse) {
	if s.publisher == nil {
		return
	}
	event := messaging.InventoryUpdatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventInventoryUpdated),
		Data: messaging.InventoryUpdatedData{
			ItemID:   item.ID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventInventoryUpdated, event); err != nil {
		log.Printf("[ERROR] Failed to publish %s event: %v", messaging.EventInventoryUpdated, err)
	}
}
