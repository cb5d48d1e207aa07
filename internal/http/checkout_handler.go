package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
)

// POST /api/v1/checkout
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		s.respondError(w, http.StatusInternalServerError, "internal_error", "session is missing")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	info := domain.CustomerInfo{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	// Once issued, a submission runs to completion or failure even if the
	// client goes away; the submitter's own timeout bounds it.
	ctx := context.WithoutCancel(r.Context())

	var ref domain.OrderRef
	err := sess.Checkout(func(snapshot domain.CartSnapshot) error {
		var err error
		ref, err = s.submitter.SubmitOrder(ctx, info, snapshot)
		return err
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID:   ref.ID,
		CreatedAt: ref.CreatedAt.UTC().Format(time.RFC3339),
	})
}
