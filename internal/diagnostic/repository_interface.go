package diagnostic

import "context"

// RepositoryInterface defines the contract for test data access
type RepositoryInterface interface {
	CreateTest(ctx context.Context, req CreateTestRequest) (*TestResponse, error)
	ListTests(ctx context.Context) ([]TestResponse, error)
	UpdateTest(ctx context.Context, id int, req UpdateTestRequest) (*TestResponse, error)
	DeleteTest(ctx context.Context, id int) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
