package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

// StatusUpdateFunc decides the new status given the stored one.
type StatusUpdateFunc func(current domain.OrderStatus) (domain.OrderStatus, error)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order domain.NewOrder) (domain.OrderRef, error)
	// ListOrders returns all orders, most recent first.
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	// UpdateOrderStatus applies fn to the stored status atomically.
	UpdateOrderStatus(ctx context.Context, id int64, fn StatusUpdateFunc) (domain.OrderStatus, error)
}
