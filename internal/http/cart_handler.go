package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

// GET /api/v1/cart
func (s *Server) GetCart(w http.ResponseWriter, r *http.Request) {
	s.respondCart(w, r, func(*cart.Store) {})
}

// POST /api/v1/cart/items
func (s *Server) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == nil {
		s.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := s.catalog.GetProduct(r.Context(), *req.ProductID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("get product", zap.Int64("product_id", *req.ProductID), zap.Error(err))
		}
		s.respondDomainError(w, err)
		return
	}

	s.respondCart(w, r, func(store *cart.Store) {
		store.Add(product)
	})
}

// POST /api/v1/cart/merge
//
// Folds a batch of lines into the cart. Every product is resolved first so
// an unknown id leaves the cart unchanged.
func (s *Server) MergeItems(w http.ResponseWriter, r *http.Request) {
	var req MergeItemsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	lines := make([]domain.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ProductID == nil {
			s.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
			return
		}

		product, err := s.catalog.GetProduct(r.Context(), *item.ProductID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.logger.Error("get product", zap.Int64("product_id", *item.ProductID), zap.Error(err))
			}
			s.respondDomainError(w, err)
			return
		}

		lines = append(lines, domain.CartLine{Product: product, Quantity: item.Quantity})
	}

	s.respondCart(w, r, func(store *cart.Store) {
		store.Merge(lines)
	})
}

// PUT /api/v1/cart/items/{product_id}
func (s *Server) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.int64Param(w, r, "product_id")
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity == nil {
		s.respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	s.respondCart(w, r, func(store *cart.Store) {
		store.UpdateQuantity(id, *req.Quantity)
	})
}

// DELETE /api/v1/cart/items/{product_id}
func (s *Server) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.int64Param(w, r, "product_id")
	if !ok {
		return
	}

	s.respondCart(w, r, func(store *cart.Store) {
		store.Remove(id)
	})
}

// DELETE /api/v1/cart
func (s *Server) ClearCart(w http.ResponseWriter, r *http.Request) {
	s.respondCart(w, r, func(store *cart.Store) {
		store.Clear()
	})
}

// respondCart applies fn to the session cart and renders the result.
func (s *Server) respondCart(w http.ResponseWriter, r *http.Request, fn func(*cart.Store)) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		s.respondError(w, http.StatusInternalServerError, "internal_error", "session is missing")
		return
	}

	var dto CartDTO
	sess.Do(func(store *cart.Store) {
		fn(store)
		dto = convertCart(store, s.currency)
	})

	s.respondJSON(w, http.StatusOK, dto)
}

func (s *Server) int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_"+name, name+" must be an integer")
		return 0, false
	}
	return id, true
}
