package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/diagnostic"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// GetCounts aggregates the daily activity counts for the given date. An
// empty date defaults to today. When testType is non-empty it must be one
// of the supported diagnostic test types and a per-type count is included.
func (s *Service) GetCounts(ctx context.Context, date, testType string) (*DashboardResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	if testType != "" && !diagnostic.ValidTestType(testType) {
		return nil, ErrInvalidTestType
	}

	admissions, err := s.repo.CountAdmissions(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
	}
	visits, err := s.repo.CountVisits(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
	}
	tests, err := s.repo.CountTests(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	resp := &DashboardResponse{
		Success:    true,
		Date:       date,
		Admissions: admissions,
		Visits:     visits,
		Tests:      tests,
	}

	if testType != "" {
		typeCount, err := s.repo.CountTestsByType(ctx, date, testType)
		if err != nil {
			return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
		}
		resp.TestType = testType
		resp.TestCount = &typeCount
	}

	return resp, nil
}
