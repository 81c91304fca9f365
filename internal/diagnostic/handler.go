package diagnostic

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

type TestSuccessResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Test    *TestResponse `json:"test,omitempty"`
}

func (h *Handler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	test, err := h.service.CreateTest(r.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidTestType:
			respondError(w, http.StatusBadRequest, "invalid_test_type", "Test type must be one of the fixed categories")
		case ErrPatientNotFound:
			respondError(w, http.StatusNotFound, "patient_not_found", "Patient not found")
		default:
			respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(TestSuccessResponse{
		Success: true,
		Message: "Test record added successfully",
		Test:    test,
	})
}

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListTests(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListTestTypes serves the fixed dropdown of test categories.
func (h *Handler) ListTestTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    true,
		"test_types": TestTypes,
	})
}

func (h *Handler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Test ID must be an integer")
		return
	}

	var req UpdateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	test, err := h.service.UpdateTest(r.Context(), id, req)
	if err != nil {
		switch err {
		case ErrTestNotFound:
			respondError(w, http.StatusNotFound, "test_not_found", "Test record not found")
		case ErrInvalidTestType:
			respondError(w, http.StatusBadRequest, "invalid_test_type", "Test type must be one of the fixed categories")
		case ErrPatientNotFound:
			respondError(w, http.StatusNotFound, "patient_not_found", "Patient not found")
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TestSuccessResponse{
		Success: true,
		Message: "Test record updated successfully",
		Test:    test,
	})
}

func (h *Handler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Test ID must be an integer")
		return
	}

	if err := h.service.DeleteTest(r.Context(), id); err != nil {
		if err == ErrTestNotFound {
			respondError(w, http.StatusNotFound, "test_not_found", "Test record not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Test record deleted successfully",
	})
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
