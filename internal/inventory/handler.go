package inventory

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

type ItemSuccessResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Item    *ItemResponse `json:"item,omitempty"`
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if req.ItemName == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Item name is required")
		return
	}
	if req.Unit == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Unit is required")
		return
	}

	item, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ItemSuccessResponse{
		Success: true,
		Message: "Item added successfully",
		Item:    item,
	})
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	params := pagination.ParseParams(r)

	resp, err := h.service.ListItems(r.Context(), search, params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Item ID must be an integer")
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, req)
	if err != nil {
		switch err {
		case ErrItemNotFound:
			respondError(w, http.StatusNotFound, "item_not_found", "Inventory item not found")
		case ErrMissingName:
			respondError(w, http.StatusBadRequest, "validation_error", "Item name is required")
		case ErrMissingUnit:
			respondError(w, http.StatusBadRequest, "validation_error", "Unit is required")
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ItemSuccessResponse{
		Success: true,
		Message: "Item updated successfully",
		Item:    item,
	})
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Item ID must be an integer")
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		if err == ErrItemNotFound {
			respondError(w, http.StatusNotFound, "item_not_found", "Inventory item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "delete_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item deleted successfully",
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
