package patient

import (
	"context"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
)

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	AdmitPatient(ctx context.Context, req AdmitPatientRequest) (*PatientResponse, error)
	ListPatients(ctx context.Context, status string, params pagination.Params) (*PaginatedPatientListResponse, error)
	ListAllPatients(ctx context.Context) ([]PatientResponse, error)
	GetPatient(ctx context.Context, id int) (*PatientResponse, error)
	DischargePatient(ctx context.Context, id int) (*PatientResponse, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
