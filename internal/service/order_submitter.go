package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultSubmitTimeout = 5 * time.Second

// OrderSubmitter turns a cart snapshot and customer info into a stored order.
// It never mutates the cart; clearing it after success is up to the caller.
type OrderSubmitter struct {
	orders  port.OrderRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration
}

func NewOrderSubmitter(orders port.OrderRepository, m *metrics.Metrics, logger *zap.Logger, timeout time.Duration) *OrderSubmitter {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}

	return &OrderSubmitter{
		orders:  orders,
		metrics: m,
		logger:  logger.Named("order_submitter"),
		timeout: timeout,
	}
}

// SubmitOrder returns domain.ErrEmptyCart, joined *domain.ValidationError
// values, or a *domain.PersistenceError. Storage is only contacted once
// the input is valid.
func (s *OrderSubmitter) SubmitOrder(ctx context.Context, info domain.CustomerInfo, snapshot domain.CartSnapshot) (domain.OrderRef, error) {
	if snapshot.IsEmpty() {
		s.metrics.OrderSubmitted(metrics.ResultEmptyCart)
		return domain.OrderRef{}, domain.ErrEmptyCart
	}

	if err := ValidateCustomer(info); err != nil {
		s.metrics.OrderSubmitted(metrics.ResultInvalid)
		return domain.OrderRef{}, err
	}

	order := BuildOrder(info, snapshot)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ref, err := s.orders.InsertOrder(ctx, order)
	if err != nil {
		s.metrics.OrderSubmitted(metrics.ResultPersistence)
		s.logger.Error("insert order failed",
			zap.Int("items", len(order.Items)),
			zap.String("total", order.Total.StringFixed(domain.MinorUnits)),
			zap.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			return domain.OrderRef{}, &domain.PersistenceError{
				Message: fmt.Sprintf("storage did not respond within %s", s.timeout),
				Err:     err,
			}
		}
		return domain.OrderRef{}, &domain.PersistenceError{Message: err.Error(), Err: err}
	}

	s.metrics.OrderSubmitted(metrics.ResultCreated)
	s.logger.Info("order created",
		zap.Int64("order_id", ref.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.StringFixed(domain.MinorUnits)))

	return ref, nil
}

// BuildOrder itemizes the snapshot. Each subtotal is rounded to currency
// precision and the total is the sum of the rounded subtotals.
func BuildOrder(info domain.CustomerInfo, snapshot domain.CartSnapshot) domain.NewOrder {
	items := make([]domain.OrderLineItem, 0, len(snapshot.Lines))
	total := decimal.Zero

	for _, line := range snapshot.Lines {
		subtotal := domain.RoundMoney(line.Subtotal())
		items = append(items, domain.OrderLineItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			UnitPrice:   line.Product.Price,
			Quantity:    line.Quantity,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}

	return domain.NewOrder{
		Customer:      info,
		Items:         items,
		Total:         total,
		Status:        domain.OrderStatusPending,
		PaymentMethod: domain.PaymentCashOnDelivery,
	}
}
