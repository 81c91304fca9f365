package patient

import (
	"context"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

// RepositoryInterface defines the contract for patient data access
type RepositoryInterface interface {
	AdmitPatient(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error)
	ListPatients(ctx context.Context, status string, params pagination.Params) ([]PatientResponse, int, error)
	ListAllPatients(ctx context.Context) ([]PatientResponse, error)
	GetPatient(ctx context.Context, id int) (*PatientResponse, error)
	DischargePatient(ctx context.Context, id int) (*PatientResponse, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
