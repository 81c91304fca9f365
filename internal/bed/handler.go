package bed

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

type BedSuccessResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Bed     *BedResponse `json:"bed,omitempty"`
}

func (h *Handler) CreateBed(w http.ResponseWriter, r *http.Request) {
	var req CreateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	bed, err := h.service.CreateBed(r.Context(), req)
	if err != nil {
		switch err {
		case ErrDuplicateBed:
			respondError(w, http.StatusConflict, "duplicate_bed", "Bed ID already exists")
		case ErrInvalidBedID:
			respondError(w, http.StatusBadRequest, "validation_error", "Bed ID must be a positive integer")
		case ErrInvalidStatus:
			respondError(w, http.StatusBadRequest, "validation_error", "Status must be Vacant or Occupied")
		default:
			respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(BedSuccessResponse{
		Success: true,
		Message: "Bed added successfully",
		Bed:     bed,
	})
}

func (h *Handler) ListBeds(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	ward := r.URL.Query().Get("ward")

	resp, err := h.service.ListBeds(r.Context(), status, ward)
	if err != nil {
		if err == ErrInvalidStatus {
			respondError(w, http.StatusBadRequest, "invalid_status", "Status must be Vacant or Occupied")
			return
		}
		respondError(w, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) UpdateBed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Bed ID must be an integer")
		return
	}

	var req UpdateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	bed, err := h.service.UpdateBed(r.Context(), id, req)
	if err != nil {
		switch err {
		case ErrBedNotFound:
			respondError(w, http.StatusNotFound, "bed_not_found", "Bed not found")
		case ErrInvalidStatus:
			respondError(w, http.StatusBadRequest, "validation_error", "Status must be Vacant or Occupied")
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BedSuccessResponse{
		Success: true,
		Message: "Bed updated successfully",
		Bed:     bed,
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
