package assistant

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// SuggestDosage handles POST /assistant/dosage.
func (h *Handler) SuggestDosage(w http.ResponseWriter, r *http.Request) {
	var req DosageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	resp, err := SuggestDosage(req.Medicine, req.Age)
	if err != nil {
		switch err {
		case ErrMissingMedicine:
			respondError(w, http.StatusBadRequest, "validation_error", "Please enter a medicine name")
		case ErrInvalidAge:
			respondError(w, http.StatusBadRequest, "validation_error", "Age must be between 0 and 120")
		default:
			respondError(w, http.StatusInternalServerError, "dosage_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RecommendMedicines handles POST /assistant/recommend.
func (h *Handler) RecommendMedicines(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	resp, err := RecommendMedicines(req.Symptoms)
	if err != nil {
		if err == ErrMissingSymptoms {
			respondError(w, http.StatusBadRequest, "validation_error", "Please enter some symptoms")
			return
		}
		respondError(w, http.StatusInternalServerError, "recommend_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SummarizeNotes handles POST /assistant/summarize.
func (h *Handler) SummarizeNotes(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	resp, err := SummarizeNotes(req.Notes)
	if err != nil {
		if err == ErrMissingNotes {
			respondError(w, http.StatusBadRequest, "validation_error", "Please enter some notes")
			return
		}
		respondError(w, http.StatusInternalServerError, "summarize_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
