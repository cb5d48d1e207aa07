package http

import (
	"net/http"

	"go.uber.org/zap"
)

// GET /api/v1/products
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.logger.Error("list products", zap.Error(err))
		s.respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "catalog is unavailable")
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, convertProduct(p, s.currency))
	}

	s.respondJSON(w, http.StatusOK, dtos)
}

// GET /api/v1/products/{product_id}
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := s.int64Param(w, r, "product_id")
	if !ok {
		return
	}

	product, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, convertProduct(product, s.currency))
}
