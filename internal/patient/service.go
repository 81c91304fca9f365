package patient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/telemetry"
)

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   *telemetry.Metrics
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

func (s *Service) AdmitPatient(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.AdmissionDate == "" {
		req.AdmissionDate = time.Now().Format("2006-01-02")
	}

	patient, err := s.repo.AdmitPatient(ctx, req)
	if err != nil {
		if err == ErrNoVacantBed {
			return nil, err
		}
		return nil, fmt.Errorf("failed to admit patient: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordAdmission(ctx, patient.Department)
	}

	if s.publisher != nil {
		event := messaging.PatientAdmittedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventPatientAdmitted),
			Data: messaging.PatientAdmittedData{
				PatientID:     patient.ID,
				Name:          patient.Name,
				Department:    patient.Department,
				BedID:         derefBed(patient.BedID),
				AdmissionDate: patient.AdmissionDate,
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventPatientAdmitted, event); err != nil {
			log.Printf("[ERROR] Failed to publish %s event: %v", messaging.EventPatientAdmitted, err)
		} else if s.metrics != nil {
			s.metrics.RecordEventPublished(ctx, messaging.EventPatientAdmitted)
		}
	}

	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context, status string, params pagination.Params) (*PaginatedPatientListResponse, error) {
	params.Validate()

	patients, total, err := s.repo.ListPatients(ctx, status, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	return &PaginatedPatientListResponse{
		Success:    true,
		Patients:   patients,
		Pagination: params.CalculateMeta(total),
	}, nil
}

func (s *Service) ListAllPatients(ctx context.Context) ([]PatientResponse, error) {
	patients, err := s.repo.ListAllPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id int) (*PatientResponse, error) {
	patient, err := s.repo.GetPatient(ctx, id)
	if err != nil {
		if err == ErrPatientNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) DischargePatient(ctx context.Context, id int) (*PatientResponse, error) {
	patient, err := s.repo.DischargePatient(ctx, id)
	if err != nil {
		if err == ErrPatientNotFound || err == ErrAlreadyDischarged {
			return nil, err
		}
		return nil, fmt.Errorf("failed to discharge patient: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordDischarge(ctx)
	}

	if s.publisher != nil {
		event := messaging.PatientDischargedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventPatientDischarged),
			Data: messaging.PatientDischargedData{
				PatientID:     patient.ID,
				BedID:         derefBed(patient.BedID),
				DischargeDate: derefString(patient.DischargeDate),
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventPatientDischarged, event); err != nil {
			log.Printf("[ERROR] Failed to publish %s event: %v", messaging.EventPatientDischarged, err)
		} else if s.metrics != nil {
			s.metrics.RecordEventPublished(ctx, messaging.EventPatientDischarged)
		}
	}

	return patient, nil
}

func derefBed(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
