package patient

import "github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"

// Patient statuses
const (
	StatusAdmitted   = "Admitted"
	StatusDischarged = "Discharged"
)

// AdmitPatientRequest represents the request to admit a new patient
type AdmitPatientRequest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	AdmissionDate string `json:"admission_date"` // Format: YYYY-MM-DD, defaults to today
	Department    string `json:"department"`
}

// PatientResponse represents the patient data returned to clients
type PatientResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	AdmissionDate string  `json:"admission_date"`
	DischargeDate *string `json:"discharge_date,omitempty"`
	Status        string  `json:"status"`
	BedID         *int    `json:"bed_id,omitempty"`
	Department    string  `json:"department"`
}

// PaginatedPatientListResponse wraps a patient page with metadata
type PaginatedPatientListResponse struct {
	Success    bool              `json:"success"`
	Patients   []PatientResponse `json:"patients"`
	Pagination pagination.Meta   `json:"pagination"`
}
