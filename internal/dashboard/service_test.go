package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestGetCounts_Success tests the combined daily counts
func TestGetCounts_Success(t *testing.T) {
	mockRepo := &mockRepository{
		admissionsFunc: func(ctx context.Context, date string) (int, error) { return 3, nil },
		visitsFunc:     func(ctx context.Context, date string) (int, error) { return 7, nil },
		testsFunc:      func(ctx context.Context, date string) (int, error) { return 2, nil },
	}
	service := NewService(mockRepo)

	resp, err := service.GetCounts(context.Background(), "2026-08-31", "")

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Admissions != 3 || resp.Visits != 7 || resp.Tests != 2 {
		t.Errorf("Unexpected counts: %+v", resp)
	}
	if resp.TestCount != nil {
		t.Error("Expected no per-type count without a test_type filter")
	}
}

// TestGetCounts_DefaultsToToday tests the empty date default
func TestGetCounts_DefaultsToToday(t *testing.T) {
	var gotDate string
	mockRepo := &mockRepository{
		admissionsFunc: func(ctx context.Context, date string) (int, error) {
			gotDate = date
			return 0, nil
		},
		visitsFunc: func(ctx context.Context, date string) (int, error) { return 0, nil },
		testsFunc:  func(ctx context.Context, date string) (int, error) { return 0, nil },
	}
	service := NewService(mockRepo)

	resp, err := service.GetCounts(context.Background(), "", "")

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	today := time.Now().Format("2006-01-02")
	if gotDate != today {
		t.Errorf("Expected queries for '%s', got '%s'", today, gotDate)
	}
	if resp.Date != today {
		t.Errorf("Expected response date '%s', got '%s'", today, resp.Date)
	}
}

// TestGetCounts_InvalidDate tests date format validation
func TestGetCounts_InvalidDate(t *testing.T) {
	service := NewService(&mockRepository{})

	if _, err := service.GetCounts(context.Background(), "31-08-2026", ""); err != ErrInvalidDate {
		t.Errorf("Expected ErrInvalidDate, got: %v", err)
	}
}

// TestGetCounts_WithTestType tests the per-type count
func TestGetCounts_WithTestType(t *testing.T) {
	mockRepo := &mockRepository{
		admissionsFunc: func(ctx context.Context, date string) (int, error) { return 1, nil },
		visitsFunc:     func(ctx context.Context, date string) (int, error) { return 1, nil },
		testsFunc:      func(ctx context.Context, date string) (int, error) { return 4, nil },
		testsByTypeFunc: func(ctx context.Context, date, testType string) (int, error) {
			if testType != "X-Ray" {
				t.Errorf("Expected test type 'X-Ray', got '%s'", testType)
			}
			return 2, nil
		},
	}
	service := NewService(mockRepo)

	resp, err := service.GetCounts(context.Background(), "2026-08-31", "X-Ray")

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.TestCount == nil || *resp.TestCount != 2 {
		t.Errorf("Expected per-type count 2, got %v", resp.TestCount)
	}
	if resp.TestType != "X-Ray" {
		t.Errorf("Expected test_type 'X-Ray', got '%s'", resp.TestType)
	}
}

// TestGetCounts_InvalidTestType tests rejection of an unknown category
func TestGetCounts_InvalidTestType(t *testing.T) {
	service := NewService(&mockRepository{})

	if _, err := service.GetCounts(context.Background(), "2026-08-31", "Palm Reading"); err != ErrInvalidTestType {
		t.Errorf("Expected ErrInvalidTestType, got: %v", err)
	}
}

// mockRepository is a test double for RepositoryInterface
type mockRepository struct {
	admissionsFunc  func(ctx context.Context, date string) (int, error)
	visitsFunc      func(ctx context.Context, date string) (int, error)
	testsFunc       func(ctx context.Context, date string) (int, error)
	testsByTypeFunc func(ctx context.Context, date, testType string) (int, error)
}

func (m *mockRepository) CountAdmissions(ctx context.Context, date string) (int, error) {
	if m.admissionsFunc != nil {
		return m.admissionsFunc(ctx, date)
	}
	return 0, errors.New("not implemented")
}

func (m *mockRepository) CountVisits(ctx context.Context, date string) (int, error) {
	if m.visitsFunc != nil {
		return m.visitsFunc(ctx, date)
	}
	return 0, errors.New("not implemented")
}

func (m *mockRepository) CountTests(ctx context.Context, date string) (int, error) {
	if m.testsFunc != nil {
		return m.testsFunc(ctx, date)
	}
	return 0, errors.New("not implemented")
}

func (m *mockRepository) CountTestsByType(ctx context.Context, date, testType string) (int, error) {
	if m.testsByTypeFunc != nil {
		return m.testsByTypeFunc(ctx, date, testType)
	}
	return 0, errors.New("not implemented")
}
