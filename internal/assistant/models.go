package assistant

// DosageRequest asks for an age-appropriate dosage guideline for a medicine.
type DosageRequest struct {
	Medicine string `json:"medicine"`
	Age      int    `json:"age"`
}

// DosageResponse carries the age group and the advisory text.
type DosageResponse struct {
	Success  bool   `json:"success"`
	Medicine string `json:"medicine"`
	AgeGroup string `json:"age_group"`
	Advice   string `json:"advice"`
}

// RecommendRequest carries a comma-separated symptom list.
type RecommendRequest struct {
	Symptoms string `json:"symptoms"`
}

// RecommendResponse lists the medicines matched against the symptom rules.
type RecommendResponse struct {
	Success         bool     `json:"success"`
	Recommendations []string `json:"recommendations"`
	Message         string   `json:"message,omitempty"`
}

// SummarizeRequest carries free-form doctor notes.
type SummarizeRequest struct {
	Notes string `json:"notes"`
}

// SummarizeResponse carries the extracted key-instruction sentences.
type SummarizeResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	Message string `json:"message,omitempty"`
}
