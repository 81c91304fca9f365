package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Handler serves the login/logout endpoints.
type Handler struct {
	verifier *Verifier
	metrics  MetricsRecorder
}

func NewHandler(verifier *Verifier, metrics MetricsRecorder) *Handler {
	return &Handler{verifier: verifier, metrics: metrics}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	role, err := Authenticate(req.Username, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordAuthFailure(r.Context(), "invalid_credentials")
		}
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	token, err := h.verifier.IssueToken(req.Username, role)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "token_issue_failed", "Failed to issue session token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		Success:   true,
		Token:     token,
		Role:      role,
		ExpiresAt: h.verifier.TokenExpiry(),
	})
}

// Logout acknowledges the end of a session. Tokens are stateless, so the
// client discards the token; the endpoint exists so the action is logged.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if pr, ok := FromContext(r.Context()); ok {
		log.Printf("User %s (%s) logged out", pr.Username, pr.Role)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
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
