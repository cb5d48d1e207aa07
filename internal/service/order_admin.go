package service

import (
	"context"
	"errors"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// OrderAdmin backs the order-management surface.
type OrderAdmin struct {
	orders port.OrderRepository
	strict bool
	logger *zap.Logger
}

// NewOrderAdmin builds an OrderAdmin. With strict, status changes follow
// pending→{processing,cancelled}, processing→{completed,cancelled}.
func NewOrderAdmin(orders port.OrderRepository, strict bool, logger *zap.Logger) *OrderAdmin {
	return &OrderAdmin{
		orders: orders,
		strict: strict,
		logger: logger.Named("order_admin"),
	}
}

// ListOrders returns all orders, most recent first.
func (a *OrderAdmin) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := a.orders.ListOrders(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return orders, nil
}

func (a *OrderAdmin) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	order, err := a.orders.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, storageError(err)
	}
	return order, nil
}

// UpdateStatus moves the order to next. Setting the current status again
// yields domain.ErrStatusUnchanged.
func (a *OrderAdmin) UpdateStatus(ctx context.Context, id int64, next domain.OrderStatus) (domain.OrderStatus, error) {
	var previous domain.OrderStatus

	updated, err := a.orders.UpdateOrderStatus(ctx, id, func(current domain.OrderStatus) (domain.OrderStatus, error) {
		previous = current
		if err := current.CheckTransition(next, a.strict); err != nil {
			return "", err
		}
		return next, nil
	})
	if err != nil {
		return "", storageError(err)
	}

	a.logger.Info("order status updated",
		zap.Int64("order_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(updated)))

	return updated, nil
}

// storageError passes domain errors through and wraps everything else
// as a PersistenceError.
func storageError(err error) error {
	for _, known := range []error{
		domain.ErrNotFound,
		domain.ErrStatusUnchanged,
		domain.ErrInvalidStatus,
		domain.ErrInvalidTransition,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		return err
	}

	return &domain.PersistenceError{Message: err.Error(), Err: err}
}
