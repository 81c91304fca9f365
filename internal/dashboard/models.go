package dashboard

// DashboardResponse carries the daily activity counts shown on the
// front-desk landing page.
type DashboardResponse struct {
	Success    bool   `json:"success"`
	Date       string `json:"date"`
	Admissions int    `json:"admissions"`
	Visits     int    `json:"visits"`
	Tests      int    `json:"tests"`
	TestType   string `json:"test_type,omitempty"`
	TestCount  *int   `json:"test_count,omitempty"`
}
