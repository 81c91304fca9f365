package visit

import "github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"

// CreateVisitRequest represents the request to record an outpatient visit.
// Only the name is required; age, department and notes are free-form.
type CreateVisitRequest struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	VisitDate  string `json:"visit_date"` // Format: YYYY-MM-DD, defaults to today
	Department string `json:"department"`
	Notes      string `json:"notes"`
}

// UpdateVisitRequest represents the request to edit a visit record
type UpdateVisitRequest struct {
	Name       *string `json:"name,omitempty"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	VisitDate  *string `json:"visit_date,omitempty"`
	Department *string `json:"department,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// VisitResponse represents the visit data returned to clients
type VisitResponse struct {
	InflowID   int    `json:"inflow_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	VisitDate  string `json:"visit_date"`
	Department string `json:"department"`
	Notes      string `json:"notes"`
}

// PaginatedVisitListResponse wraps a visit page with metadata
type PaginatedVisitListResponse struct {
	Success    bool            `json:"success"`
	Visits     []VisitResponse `json:"visits"`
	Pagination pagination.Meta `json:"pagination"`
}
