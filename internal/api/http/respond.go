package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/service"
)

// response is the uniform envelope: success flag, human-readable
// message, optional payload.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Message: message, Data: data})
}

func respondCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, response{Success: true, Message: message, Data: data})
}

// respondError maps the domain error taxonomy onto HTTP statuses. The
// message always reaches the caller; nothing is swallowed.
func respondError(w http.ResponseWriter, err error) {
	var (
		validation *domain.ValidationError
		conflict   *domain.ConflictError
		notFound   *domain.NotFoundError
		budget     *domain.BudgetExceededError
	)
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, response{Message: err.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, response{Message: err.Error()})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, response{Message: err.Error()})
	case errors.As(err, &budget):
		writeJSON(w, http.StatusUnprocessableEntity, response{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, response{Message: err.Error()})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, response{Message: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "invalid request body"})
		return false
	}
	return true
}
