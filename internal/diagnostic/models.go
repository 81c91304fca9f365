package diagnostic

// TestTypes is the fixed set of diagnostic test categories.
var TestTypes = []string{
	"Blood Test",
	"X-Ray",
	"Thyroid Test",
	"Urine Test",
	"Diabetes Test",
	"CT Scan",
	"MRI",
	"B12 Test",
}

// ValidTestType reports whether t is one of the fixed categories.
func ValidTestType(t string) bool {
	for _, tt := range TestTypes {
		if tt == t {
			return true
		}
	}
	return false
}

// CreateTestRequest represents the request to record a diagnostic test
type CreateTestRequest struct {
	PatientID int    `json:"patient_id"`
	TestType  string `json:"test_type"`
	TestDate  string `json:"test_date"` // Format: YYYY-MM-DD, defaults to today
	Result    string `json:"result"`
}

// UpdateTestRequest represents the request to edit a test record
type UpdateTestRequest struct {
	PatientID *int    `json:"patient_id,omitempty"`
	TestType  *string `json:"test_type,omitempty"`
	TestDate  *string `json:"test_date,omitempty"`
	Result    *string `json:"result,omitempty"`
}

// TestResponse represents the test data returned to clients. PatientName is
// resolved through the join against patients.
type TestResponse struct {
	TestID      int    `json:"test_id"`
	PatientID   int    `json:"patient_id"`
	PatientName string `json:"patient_name,omitempty"`
	TestType    string `json:"test_type"`
	TestDate    string `json:"test_date"`
	Result      string `json:"result"`
}

// TestListResponse wraps a test listing
type TestListResponse struct {
	Success bool           `json:"success"`
	Tests   []TestResponse `json:"tests"`
	Total   int            `json:"total"`
}
