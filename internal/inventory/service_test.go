package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/testutil"
)

// TestCreateItem_Success tests adding a stock item
func TestCreateItem_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
			return &ItemResponse{ID: 1, ItemName: req.ItemName, Quantity: req.Quantity, Unit: req.Unit}, nil
		},
	}
	publisher := testutil.NewMockPublisher()
	service := NewService(mockRepo, publisher)

	item, err := service.CreateItem(context.Background(), CreateItemRequest{
		ItemName: "Paracetamol",
		Quantity: 100,
		Unit:     "tablets",
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if item.ItemName != "Paracetamol" {
		t.Errorf("Expected item 'Paracetamol', got '%s'", item.ItemName)
	}
	publisher.AssertEventPublished(t, messaging.EventInventoryUpdated)
}

// TestCreateItem_MissingFields tests the required-field validations
func TestCreateItem_MissingFields(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	service := NewService(&mockRepository{}, publisher)

	if _, err := service.CreateItem(context.Background(), CreateItemRequest{Unit: "tablets"}); err != ErrMissingName {
		t.Errorf("Expected ErrMissingName, got: %v", err)
	}
	if _, err := service.CreateItem(context.Background(), CreateItemRequest{ItemName: "Gauze"}); err != ErrMissingUnit {
		t.Errorf("Expected ErrMissingUnit, got: %v", err)
	}
	publisher.AssertEventNotPublished(t, messaging.EventInventoryUpdated)
}

// TestListItems_Search tests that a substring search is passed through
func TestListItems_Search(t *testing.T) {
	var gotSearch string
	mockRepo := &mockRepository{
		listFunc: func(ctx context.Context, search string, params pagination.Params) ([]ItemResponse, int, error) {
			gotSearch = search
			var matched []ItemResponse
			all := []ItemResponse{
				{ID: 1, ItemName: "Paracetamol", Quantity: 100, Unit: "tablets"},
				{ID: 2, ItemName: "Gauze", Quantity: 50, Unit: "rolls"},
				{ID: 3, ItemName: "Parachute Stretcher", Quantity: 2, Unit: "units"},
			}
			for _, item := range all {
				if strings.Contains(item.ItemName, search) {
					matched = append(matched, item)
				}
			}
			return matched, len(matched), nil
		},
	}
	service := NewService(mockRepo, nil)

	resp, err := service.ListItems(context.Background(), "Par", pagination.Params{Page: 1, Limit: 20})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotSearch != "Par" {
		t.Errorf("Expected search term 'Par', got '%s'", gotSearch)
	}
	if len(resp.Items) != 2 {
		t.Errorf("Expected 2 matching items, got %d", len(resp.Items))
	}
}

// TestUpdateItem_PublishesEvent tests that quantity edits emit an event
func TestUpdateItem_PublishesEvent(t *testing.T) {
	mockRepo := &mockRepository{
		updateFunc: func(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error) {
			return &ItemResponse{ID: id, ItemName: "Paracetamol", Quantity: *req.Quantity, Unit: "tablets"}, nil
		},
	}
	publisher := testutil.NewMockPublisher()
	service := NewService(mockRepo, publisher)

	qty := 75
	item, err := service.UpdateItem(context.Background(), 1, UpdateItemRequest{Quantity: &qty})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if item.Quantity != 75 {
		t.Errorf("Expected quantity 75, got %d", item.Quantity)
	}
	publisher.AssertEventPublished(t, messaging.EventInventoryUpdated)
}

// TestUpdateItem_BlankName tests rejection of clearing the name
func TestUpdateItem_BlankName(t *testing.T) {
	service := NewService(&mockRepository{}, nil)

	blank := ""
	if _, err := service.UpdateItem(context.Background(), 1, UpdateItemRequest{ItemName: &blank}); err != ErrMissingName {
		t.Errorf("Expected ErrMissingName, got: %v", err)
	}
}

// TestDeleteItem_NotFound tests deleting a missing item
func TestDeleteItem_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		deleteFunc: func(ctx context.Context, id int) error {
			return ErrItemNotFound
		},
	}
	service := NewService(mockRepo, nil)

	if err := service.DeleteItem(context.Background(), 99); err != ErrItemNotFound {
		t.Errorf("Expected ErrItemNotFound, got: %v", err)
	}
}

// mockRepository is a test double for RepositoryInterface
type mockRepository struct {
	createFunc func(ctx context.Context, req CreateItemRequest) (*ItemResponse, error)
	listFunc   func(ctx context.Context, search string, params pagination.Params) ([]ItemResponse, int, error)
	updateFunc func(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error)
	deleteFunc func(ctx context.Context, id int) error
}

func (m *mockRepository) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListItems(ctx context.Context, search string, params pagination.Params) ([]ItemResponse, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, search, params)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (*ItemResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) DeleteItem(ctx context.Context, id int) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}
