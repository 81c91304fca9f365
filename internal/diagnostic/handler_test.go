package diagnostic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHandlerCreateTest_PatientNotFound tests the 404 path for a missing patient
func TestHandlerCreateTest_PatientNotFound(t *testing.T) {
	mockSvc := &mockService{
		createFunc: func(ctx context.Context, req CreateTestRequest) (*TestResponse, error) {
			return nil, ErrPatientNotFound
		},
	}
	handler := NewHandler(mockSvc)

	body, _ := json.Marshal(CreateTestRequest{PatientID: 999, TestType: "MRI"})
	req := httptest.NewRequest(http.MethodPost, "/tests", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateTest(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

// TestHandlerCreateTest_InvalidType tests the 400 path for an unknown category
func TestHandlerCreateTest_InvalidType(t *testing.T) {
	mockSvc := &mockService{
		createFunc: func(ctx context.Context, req CreateTestRequest) (*TestResponse, error) {
			return nil, ErrInvalidTestType
		},
	}
	handler := NewHandler(mockSvc)

	body, _ := json.Marshal(CreateTestRequest{PatientID: 1, TestType: "Ultrasound"})
	req := httptest.NewRequest(http.MethodPost, "/tests", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateTest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

// TestHandlerListTestTypes tests the fixed dropdown endpoint
func TestHandlerListTestTypes(t *testing.T) {
	handler := NewHandler(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/tests/types", nil)
	rec := httptest.NewRecorder()

	handler.ListTestTypes(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response struct {
		Success   bool     `json:"success"`
		TestTypes []string `json:"test_types"`
	}
	json.NewDecoder(rec.Body).Decode(&response)
	if len(response.TestTypes) != len(TestTypes) {
		t.Errorf("Expected %d test types, got %d", len(TestTypes), len(response.TestTypes))
	}
}

// mockService is a test double for ServiceInterface
type mockService struct {
	createFunc func(ctx context.Context, req CreateTestRequest) (*TestResponse, error)
	listFunc   func(ctx context.Context) (*TestListResponse, error)
	updateFunc func(ctx context.Context, id int, req UpdateTestRequest) (*TestResponse, error)
	deleteFunc func(ctx context.Context, id int) error
}

func (m *mockService) CreateTest(ctx context.Context, req CreateTestRequest) (*TestResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) ListTests(ctx context.Context) (*TestListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) UpdateTest(ctx context.Context, id int, req UpdateTestRequest) (*TestResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) DeleteTest(ctx context.Context, id int) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}
