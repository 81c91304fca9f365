package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/testutil"
)

// TestAdmitPatient_Success tests a successful admission with an auto-assigned bed
func TestAdmitPatient_Success(t *testing.T) {
	bedID := 3
	mockRepo := &mockRepository{
		admitFunc: func(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
			return &PatientResponse{
				ID:            1,
				Name:          req.Name,
				Age:           req.Age,
				Gender:        req.Gender,
				AdmissionDate: req.AdmissionDate,
				Status:        StatusAdmitted,
				BedID:         &bedID,
				Department:    req.Department,
			}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(mockRepo, publisher, nil)
	req := AdmitPatientRequest{
		Name:       "John Doe",
		Age:        42,
		Gender:     "Male",
		Department: "Cardiology",
	}

	patient, err := service.AdmitPatient(context.Background(), req)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if patient == nil {
		t.Fatal("Expected patient, got nil")
	}
	if patient.Status != StatusAdmitted {
		t.Errorf("Expected status '%s', got '%s'", StatusAdmitted, patient.Status)
	}
	if patient.BedID == nil || *patient.BedID != 3 {
		t.Errorf("Expected bed 3 to be assigned, got %v", patient.BedID)
	}
	publisher.AssertEventPublished(t, messaging.EventPatientAdmitted)
}

// TestAdmitPatient_DefaultsAdmissionDate tests that a missing date defaults to today
func TestAdmitPatient_DefaultsAdmissionDate(t *testing.T) {
	var gotDate string
	mockRepo := &mockRepository{
		admitFunc: func(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
			gotDate = req.AdmissionDate
			return &PatientResponse{ID: 1, Name: req.Name, AdmissionDate: req.AdmissionDate, Status: StatusAdmitted}, nil
		},
	}

	service := NewService(mockRepo, nil, nil)
	_, err := service.AdmitPatient(context.Background(), AdmitPatientRequest{Name: "Jane"})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	today := time.Now().Format("2006-01-02")
	if gotDate != today {
		t.Errorf("Expected admission date to default to '%s', got '%s'", today, gotDate)
	}
}

// TestAdmitPatient_EmptyName tests validation for empty name
func TestAdmitPatient_EmptyName(t *testing.T) {
	mockRepo := &mockRepository{}
	publisher := testutil.NewMockPublisher()
	service := NewService(mockRepo, publisher, nil)

	patient, err := service.AdmitPatient(context.Background(), AdmitPatientRequest{Name: ""})

	if err != ErrMissingName {
		t.Errorf("Expected ErrMissingName, got: %v", err)
	}
	if patient != nil {
		t.Error("Expected nil patient")
	}
	publisher.AssertEventNotPublished(t, messaging.EventPatientAdmitted)
}

// TestAdmitPatient_NoVacantBed tests that admission is refused when no bed is free
func TestAdmitPatient_NoVacantBed(t *testing.T) {
	mockRepo := &mockRepository{
		admitFunc: func(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
			return nil, ErrNoVacantBed
		},
	}
	publisher := testutil.NewMockPublisher()
	service := NewService(mockRepo, publisher, nil)

	patient, err := service.AdmitPatient(context.Background(), AdmitPatientRequest{Name: "John"})

	if err != ErrNoVacantBed {
		t.Errorf("Expected ErrNoVacantBed, got: %v", err)
	}
	if patient != nil {
		t.Error("Expected nil patient")
	}
	publisher.AssertEventNotPublished(t, messaging.EventPatientAdmitted)
}

// TestAdmitPatient_PublishFailureDoesNotFailAdmission tests that a broker error is swallowed
func TestAdmitPatient_PublishFailureDoesNotFailAdmission(t *testing.T) {
	mockRepo := &mockRepository{
		admitFunc: func(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
			return &PatientResponse{ID: 1, Name: req.Name, Status: StatusAdmitted}, nil
		},
	}
	failing := &failingPublisher{}
	service := NewService(mockRepo, failing, nil)

	patient, err := service.AdmitPatient(context.Background(), AdmitPatientRequest{Name: "John"})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if patient == nil {
		t.Fatal("Expected patient, got nil")
	}
}

// TestListPatients_StatusFilter tests that the status filter is passed through
func TestListPatients_StatusFilter(t *testing.T) {
	var gotStatus string
	mockRepo := &mockRepository{
		listFunc: func(ctx context.Context, status string, params pagination.Params) ([]PatientResponse, int, error) {
			gotStatus = status
			return []PatientResponse{
				{ID: 2, Name: "Jane", Status: StatusAdmitted},
			}, 1, nil
		},
	}
	service := NewService(mockRepo, nil, nil)

	resp, err := service.ListPatients(context.Background(), StatusAdmitted, pagination.Params{Page: 1, Limit: 20})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotStatus != StatusAdmitted {
		t.Errorf("Expected status filter '%s', got '%s'", StatusAdmitted, gotStatus)
	}
	if len(resp.Patients) != 1 {
		t.Errorf("Expected 1 patient, got %d", len(resp.Patients))
	}
	if resp.Pagination.TotalRecords != 1 {
		t.Errorf("Expected total 1, got %d", resp.Pagination.TotalRecords)
	}
}

// TestDischargePatient_Success tests a successful discharge
func TestDischargePatient_Success(t *testing.T) {
	discharged := "2026-08-31"
	mockRepo := &mockRepository{
		dischargeFunc: func(ctx context.Context, id int) (*PatientResponse, error) {
			return &PatientResponse{
				ID:            id,
				Name:          "John Doe",
				Status:        StatusDischarged,
				DischargeDate: &discharged,
			}, nil
		},
	}
	publisher := testutil.NewMockPublisher()
	service := NewService(mockRepo, publisher, nil)

	patient, err := service.DischargePatient(context.Background(), 1)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if patient.Status != StatusDischarged {
		t.Errorf("Expected status '%s', got '%s'", StatusDischarged, patient.Status)
	}
	if patient.DischargeDate == nil {
		t.Error("Expected discharge date to be set")
	}
	publisher.AssertEventPublished(t, messaging.EventPatientDischarged)
}

// TestDischargePatient_NotFound tests discharge of an unknown patient
func TestDischargePatient_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		dischargeFunc: func(ctx context.Context, id int) (*PatientResponse, error) {
			return nil, ErrPatientNotFound
		},
	}
	service := NewService(mockRepo, nil, nil)

	patient, err := service.DischargePatient(context.Background(), 99)

	if err != ErrPatientNotFound {
		t.Errorf("Expected ErrPatientNotFound, got: %v", err)
	}
	if patient != nil {
		t.Error("Expected nil patient")
	}
}

// TestDischargePatient_AlreadyDischarged tests a repeated discharge
func TestDischargePatient_AlreadyDischarged(t *testing.T) {
	mockRepo := &mockRepository{
		dischargeFunc: func(ctx context.Context, id int) (*PatientResponse, error) {
			return nil, ErrAlreadyDischarged
		},
	}
	publisher := testutil.NewMockPublisher()
	service := NewService(mockRepo, publisher, nil)

	patient, err := service.DischargePatient(context.Background(), 1)

	if err != ErrAlreadyDischarged {
		t.Errorf("Expected ErrAlreadyDischarged, got: %v", err)
	}
	if patient != nil {
		t.Error("Expected nil patient")
	}
	publisher.AssertEventNotPublished(t, messaging.EventPatientDischarged)
}

// TestGetPatient_NotFound tests retrieval of an unknown patient
func TestGetPatient_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		getFunc: func(ctx context.Context, id int) (*PatientResponse, error) {
			return nil, ErrPatientNotFound
		},
	}
	service := NewService(mockRepo, nil, nil)

	patient, err := service.GetPatient(context.Background(), 42)

	if err != ErrPatientNotFound {
		t.Errorf("Expected ErrPatientNotFound, got: %v", err)
	}
	if patient != nil {
		t.Error("Expected nil patient")
	}
}

// mockRepository is a test double for RepositoryInterface
type mockRepository struct {
	admitFunc     func(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error)
	listFunc      func(ctx context.Context, status string, params pagination.Params) ([]PatientResponse, int, error)
	listAllFunc   func(ctx context.Context) ([]PatientResponse, error)
	getFunc       func(ctx context.Context, id int) (*PatientResponse, error)
	dischargeFunc func(ctx context.Context, id int) (*PatientResponse, error)
}

func (m *mockRepository) AdmitPatient(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
	if m.admitFunc != nil {
		return m.admitFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListPatients(ctx context.Context, status string, params pagination.Params) ([]PatientResponse, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, status, params)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) ListAllPatients(ctx context.Context) ([]PatientResponse, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) GetPatient(ctx context.Context, id int) (*PatientResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) DischargePatient(ctx context.Context, id int) (*PatientResponse, error) {
	if m.dischargeFunc != nil {
		return m.dischargeFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

// failingPublisher always errors on Publish
type failingPublisher struct{}

func (f *failingPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	return errors.New("broker unavailable")
}

func (f *failingPublisher) Close() error { return nil }
