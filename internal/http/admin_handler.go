package http

import (
	"encoding/json"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

// GET /admin/{token}/orders
func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.admin.ListOrders(r.Context())
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		s.respondDomainError(w, err)
		return
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, convertOrder(o, s.currency))
	}

	s.respondJSON(w, http.StatusOK, dtos)
}

// GET /admin/{token}/orders/{order_id}
func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := s.int64Param(w, r, "order_id")
	if !ok {
		return
	}

	order, err := s.admin.GetOrder(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, convertOrder(order, s.currency))
}

// PATCH /admin/{token}/orders/{order_id}
func (s *Server) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := s.int64Param(w, r, "order_id")
	if !ok {
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	next, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	if _, err := s.admin.UpdateStatus(r.Context(), id, next); err != nil {
		s.respondDomainError(w, err)
		return
	}

	order, err := s.admin.GetOrder(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, convertOrder(order, s.currency))
}
