package patient

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

type PatientSuccessResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Patient *PatientResponse `json:"patient,omitempty"`
}

type PatientListResponse struct {
	Success  bool              `json:"success"`
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

func (h *Handler) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	var req AdmitPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Patient name is required")
		return
	}

	patient, err := h.service.AdmitPatient(r.Context(), req)
	if err != nil {
		if err == ErrNoVacantBed {
			respondError(w, http.StatusConflict, "no_vacant_bed", "No vacant beds available")
			return
		}
		respondError(w, http.StatusInternalServerError, "admission_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(PatientSuccessResponse{
		Success: true,
		Message: "Patient admitted successfully",
		Patient: patient,
	})
}

func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && status != StatusAdmitted && status != StatusDischarged {
		respondError(w, http.StatusBadRequest, "invalid_status", "Status must be Admitted or Discharged")
		return
	}

	params := pagination.ParseParams(r)

	resp, err := h.service.ListPatients(r.Context(), status, params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListAllPatients returns every patient without pagination, used to
// populate the patient picker on the test entry form.
func (h *Handler) ListAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.ListAllPatients(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PatientListResponse{
		Success:  true,
		Patients: patients,
		Total:    len(patients),
	})
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Patient ID must be an integer")
		return
	}

	patient, err := h.service.GetPatient(r.Context(), id)
	if err != nil {
		if err == ErrPatientNotFound {
			respondError(w, http.StatusNotFound, "patient_not_found", "Patient not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "get_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PatientSuccessResponse{
		Success: true,
		Message: "Patient retrieved successfully",
		Patient: patient,
	})
}

func (h *Handler) DischargePatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Patient ID must be an integer")
		return
	}

	patient, err := h.service.DischargePatient(r.Context(), id)
	if err != nil {
		switch err {
		case ErrPatientNotFound:
			respondError(w, http.StatusNotFound, "patient_not_found", "Patient not found")
		case ErrAlreadyDischarged:
			respondError(w, http.StatusConflict, "already_discharged", "Patient is already discharged")
		default:
			respondError(w, http.StatusInternalServerError, "discharge_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PatientSuccessResponse{
		Success: true,
		Message: "Patient discharged successfully",
		Patient: patient,
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
