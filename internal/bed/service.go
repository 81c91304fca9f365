package bed

import (
	"context"
	"fmt"
	"log"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
)

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

func (s *Service) CreateBed(ctx context.Context, req CreateBedRequest) (*BedResponse, error) {
	if req.BedID < 1 {
		return nil, ErrInvalidBedID
	}
	if req.Status == "" {
		req.Status = StatusVacant
	}
	if req.Status != StatusVacant && req.Status != StatusOccupied {
		return nil, ErrInvalidStatus
	}

	bed, err := s.repo.CreateBed(ctx, req)
	if err != nil {
		if err == ErrDuplicateBed {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create bed: %w", err)
	}

	if s.publisher != nil {
		event := messaging.BedCreatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventBedCreated),
			Data: messaging.BedCreatedData{
				BedID:  bed.BedID,
				Ward:   bed.Ward,
				Room:   bed.Room,
				Status: bed.Status,
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventBedCreated, event); err != nil {
			log.Printf("[ERROR] Failed to publish %s event: %v", messaging.EventBedCreated, err)
		}
	}

	return bed, nil
}

func (s *Service) ListBeds(ctx context.Context, status, ward string) (*BedListResponse, error) {
	if status != "" && status != StatusVacant && status != StatusOccupied {
		return nil, ErrInvalidStatus
	}

	beds, err := s.repo.ListBeds(ctx, status, ward)
	if err != nil {
		return nil, fmt.Errorf("failed to list beds: %w", err)
	}

	vacant, err := s.repo.CountVacant(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vacant beds: %w", err)
	}

	return &BedListResponse{
		Success:     true,
		Beds:        beds,
		Total:       len(beds),
		VacantCount: vacant,
	}, nil
}

func (s *Service) UpdateBed(ctx context.Context, id int, req UpdateBedRequest) (*BedResponse, error) {
	if req.Status != nil && *req.Status != StatusVacant && *req.Status != StatusOccupied {
		return nil, ErrInvalidStatus
	}

	bed, err := s.repo.UpdateBed(ctx, id, req)
	if err != nil {
		if err == ErrBedNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update bed: %w", err)
	}
	return bed, nil
}
