package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateVisit(ctx context.Context, req CreateVisitRequest) (*VisitResponse, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.VisitDate == "" {
		req.VisitDate = time.Now().Format("2006-01-02")
	}

	visit, err := s.repo.CreateVisit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}
	return visit, nil
}

func (s *Service) ListVisits(ctx context.Context, params pagination.Params) (*PaginatedVisitListResponse, error) {
	params.Validate()

	visits, total, err := s.repo.ListVisits(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return &PaginatedVisitListResponse{
		Success:    true,
		Visits:     visits,
		Pagination: params.CalculateMeta(total),
	}, nil
}

func (s *Service) GetVisit(ctx context.Context, id int) (*VisitResponse, error) {
	visit, err := s.repo.GetVisit(ctx, id)
	if err != nil {
		if err == ErrVisitNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return visit, nil
}

func (s *Service) UpdateVisit(ctx context.Context, id int, req UpdateVisitRequest) (*VisitResponse, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, ErrMissingName
	}

	visit, err := s.repo.UpdateVisit(ctx, id, req)
	if err != nil {
		if err == ErrVisitNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	return visit, nil
}

func (s *Service) DeleteVisit(ctx context.Context, id int) error {
	err := s.repo.DeleteVisit(ctx, id)
	if err != nil {
		if err == ErrVisitNotFound {
			return err
		}
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	return nil
}
