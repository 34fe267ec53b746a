package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps the engine's error taxonomy onto HTTP statuses. Booking
// conflicts and policy rejections carry their specific reason so clients
// can show it to the customer.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var closed *domain.CancellationClosedError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &closed):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "CANCELLATION_WINDOW_CLOSED", Message: closed.Reason})
	case errors.As(err, &validationErrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR", Message: validationErrs.Error()})
	case errors.Is(err, domain.ErrDateRangeInvalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "DATE_RANGE_INVALID", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidSelection):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "INVALID_SELECTION", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: err.Error()})
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "INTERNAL", Message: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "BAD_REQUEST", Message: message})
}
