package visit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/pagination"
	"github.com/gorilla/mux"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

type VisitSuccessResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Visit   *VisitResponse `json:"visit,omitempty"`
}

func (h *Handler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Patient name is required")
		return
	}

	visit, err := h.service.CreateVisit(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(VisitSuccessResponse{
		Success: true,
		Message: "Visit record added successfully",
		Visit:   visit,
	})
}

func (h *Handler) ListVisits(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)

	resp, err := h.service.ListVisits(r.Context(), params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) GetVisit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Visit ID must be an integer")
		return
	}

	visit, err := h.service.GetVisit(r.Context(), id)
	if err != nil {
		if err == ErrVisitNotFound {
			respondError(w, http.StatusNotFound, "visit_not_found", "Visit record not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VisitSuccessResponse{
		Success: true,
		Message: "Visit record retrieved successfully",
		Visit:   visit,
	})
}

func (h *Handler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Visit ID must be an integer")
		return
	}

	var req UpdateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	visit, err := h.service.UpdateVisit(r.Context(), id, req)
	if err != nil {
		switch err {
		case ErrVisitNotFound:
			respondError(w, http.StatusNotFound, "visit_not_found", "Visit record not found")
		case ErrMissingName:
			respondError(w, http.StatusBadRequest, "validation_error", "Patient name is required")
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VisitSuccessResponse{
		Success: true,
		Message: "Visit record updated successfully",
		Visit:   visit,
	})
}

func (h *Handler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Visit ID must be an integer")
		return
	}

	if err := h.service.DeleteVisit(r.Context(), id); err != nil {
		if err == ErrVisitNotFound {
			respondError(w, http.StatusNotFound, "visit_not_found", "Visit record not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Visit record deleted successfully",
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
