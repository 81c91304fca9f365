package diagnostic

import "context"

// ServiceInterface defines the contract for test business logic operations
type ServiceInterface interface {
	CreateTest(ctx context.Context, req CreateTestRequest) (*TestResponse, error)
	ListTests(ctx context.Context) (*TestListResponse, error)
	UpdateTest(ctx context.Context, id int, req UpdateTestRequest) (*TestResponse, error)
	DeleteTest(ctx context.Context, id int) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
