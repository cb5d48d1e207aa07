package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/session"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type Submitter interface {
	SubmitOrder(ctx context.Context, info domain.CustomerInfo, snapshot domain.CartSnapshot) (domain.OrderRef, error)
}

type Admin interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, next domain.OrderStatus) (domain.OrderStatus, error)
}

type Options struct {
	Catalog        port.ProductCatalog
	Sessions       *session.Registry
	Submitter      Submitter
	Admin          Admin
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	Currency       currency.Unit
	AdminToken     string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// DefaultMaxBodyBytes caps request bodies when Options.MaxBodyBytes is unset.
const DefaultMaxBodyBytes = 1 << 20

type Server struct {
	catalog   port.ProductCatalog
	sessions  *session.Registry
	submitter Submitter
	admin     Admin
	metrics   *metrics.Metrics
	logger    *zap.Logger
	currency  currency.Unit
	token     string
	timeout   time.Duration
	maxBody   int64
}

func NewServer(opts Options) *Server {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return &Server{
		catalog:   opts.Catalog,
		sessions:  opts.Sessions,
		submitter: opts.Submitter,
		admin:     opts.Admin,
		metrics:   opts.Metrics,
		logger:    opts.Logger.Named("http"),
		currency:  opts.Currency,
		token:     opts.AdminToken,
		timeout:   opts.RequestTimeout,
		maxBody:   maxBody,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger, s.metrics))
	r.Use(middleware.Recoverer)
	if s.timeout > 0 {
		r.Use(middleware.Timeout(s.timeout))
	}
	r.Use(middleware.RequestSize(s.maxBody))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", s.ListProducts)
		r.Get("/products/{product_id}", s.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(s.sessions))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", s.GetCart)
				r.Delete("/", s.ClearCart)
				r.Post("/items", s.AddItem)
				r.Post("/merge", s.MergeItems)
				r.Put("/items/{product_id}", s.UpdateQuantity)
				r.Delete("/items/{product_id}", s.RemoveItem)
			})
			r.Post("/checkout", s.Checkout)
		})
	})

	r.Route("/admin/{token}", func(r chi.Router) {
		r.Use(AdminTokenMiddleware(s.token))

		r.Get("/orders", s.ListOrders)
		r.Get("/orders/{order_id}", s.GetOrder)
		r.Patch("/orders/{order_id}", s.UpdateOrderStatus)
	})

	return r
}
