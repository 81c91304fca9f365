package dashboard

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetDashboard handles GET /dashboard?date=YYYY-MM-DD&test_type=...
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	testType := r.URL.Query().Get("test_type")

	resp, err := h.service.GetCounts(r.Context(), date, testType)
	if err != nil {
		switch err {
		case ErrInvalidDate:
			respondError(w, http.StatusBadRequest, "invalid_date", "Date must be in YYYY-MM-DD format")
		case ErrInvalidTestType:
			respondError(w, http.StatusBadRequest, "invalid_test_type", "Unknown test type: "+testType)
		default:
			respondError(w, http.StatusInternalServerError, "dashboard_failed", err.Error())
		}
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
