package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/session"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Int("status", status), zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondDomainError maps the domain error taxonomy to HTTP statuses.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	var (
		ve *domain.ValidationError
		pe *domain.PersistenceError
	)

	switch {
	case errors.As(err, &ve):
		s.respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "customer information is invalid",
			Code:   "validation_failed",
			Fields: domain.FieldErrors(err),
		})
	case errors.Is(err, domain.ErrEmptyCart):
		s.respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
	case errors.Is(err, session.ErrSubmissionInFlight):
		s.respondError(w, http.StatusConflict, "submission_in_flight", "order submission already in progress")
	case errors.Is(err, domain.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrStatusUnchanged):
		s.respondError(w, http.StatusConflict, "status_unchanged", "order already has this status")
	case errors.Is(err, domain.ErrInvalidTransition):
		s.respondError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		s.respondError(w, http.StatusBadRequest, "invalid_status", err.Error())
	case errors.As(err, &pe):
		s.respondError(w, http.StatusServiceUnavailable, "persistence_error", "order could not be saved, please retry")
	default:
		s.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
