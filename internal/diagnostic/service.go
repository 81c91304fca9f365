package diagnostic

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateTest(ctx context.Context, req CreateTestRequest) (*TestResponse, error) {
	if !ValidTestType(req.TestType) {
		return nil, ErrInvalidTestType
	}
	if req.TestDate == "" {
		req.TestDate = time.Now().Format("2006-01-02")
	}

	test, err := s.repo.CreateTest(ctx, req)
	if err != nil {
		if err == ErrPatientNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create test: %w", err)
	}
	return test, nil
}

func (s *Service) ListTests(ctx context.Context) (*TestListResponse, error) {
	tests, err := s.repo.ListTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}

	return &TestListResponse{
		Success: true,
		Tests:   tests,
		Total:   len(tests),
	}, nil
}

func (s *Service) UpdateTest(ctx context.Context, id int, req UpdateTestRequest) (*TestResponse, error) {
	if req.TestType != nil && !ValidTestType(*req.TestType) {
		return nil, ErrInvalidTestType
	}

	test, err := s.repo.UpdateTest(ctx, id, req)
	if err != nil {
		if err == ErrTestNotFound || err == ErrPatientNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update test: %w", err)
	}
	return test, nil
}

func (s *Service) DeleteTest(ctx context.Context, id int) error {
	err := s.repo.DeleteTest(ctx, id)
	if err != nil {
		if err == ErrTestNotFound {
			return err
		}
		return fmt.Errorf("failed to delete test: %w", err)
	}
	return nil
}
