package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// orderItemJSON is the stored shape of one element of orders.items.
type orderItemJSON struct {
	ProductID   int64       `json:"product_id"`
	ProductName string      `json:"product_name"`
	Price       json.Number `json:"price"`
	Quantity    int         `json:"quantity"`
	Subtotal    json.Number `json:"subtotal"`
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.NewOrder) (domain.OrderRef, error) {
	if len(order.Items) == 0 {
		return domain.OrderRef{}, fmt.Errorf("order items are empty")
	}

	items, err := marshalItems(order.Items)
	if err != nil {
		return domain.OrderRef{}, fmt.Errorf("marshalItems: %w", err)
	}

	row, err := r.q.InsertOrder(ctx, db.InsertOrderParams{
		Name:          order.Customer.Name,
		Email:         order.Customer.Email,
		Phone:         order.Customer.Phone,
		Address:       order.Customer.Address,
		Items:         items,
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentMethod: order.PaymentMethod,
	})
	if err != nil {
		return domain.OrderRef{}, fmt.Errorf("q.InsertOrder: %w", err)
	}

	return domain.OrderRef{ID: row.ID, CreatedAt: row.CreatedAt}, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order[%d]: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	order, err := mapOrderToDomain(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, fn port.StatusUpdateFunc) (domain.OrderStatus, error) {
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.OrderStatus, error) {
		current, err := q.GetOrderStatusForUpdate(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("order[%d]: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return "", fmt.Errorf("q.GetOrderStatusForUpdate: %w", err)
		}

		currentStatus, err := domain.ParseOrderStatus(current)
		if err != nil {
			return "", fmt.Errorf("domain.ParseOrderStatus: %w", err)
		}

		next, err := fn(currentStatus)
		if err != nil {
			return "", err
		}

		rowsAffected, err := q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
			ID:     id,
			Status: string(next),
		})
		if err != nil {
			return "", fmt.Errorf("q.UpdateOrderStatus: %w", err)
		}
		if rowsAffected == 0 {
			return "", fmt.Errorf("order[%d]: %w", id, domain.ErrNotFound)
		}

		return next, nil
	})
}

func marshalItems(items []domain.OrderLineItem) ([]byte, error) {
	stored := make([]orderItemJSON, 0, len(items))
	for _, item := range items {
		stored = append(stored, orderItemJSON{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       json.Number(item.UnitPrice.StringFixed(domain.MinorUnits)),
			Quantity:    item.Quantity,
			Subtotal:    json.Number(item.Subtotal.StringFixed(domain.MinorUnits)),
		})
	}

	return json.Marshal(stored)
}

func unmarshalItems(data []byte) ([]domain.OrderLineItem, error) {
	var stored []orderItemJSON
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	items := make([]domain.OrderLineItem, 0, len(stored))
	for _, s := range stored {
		price, err := decimal.NewFromString(s.Price.String())
		if err != nil {
			return nil, fmt.Errorf("price[%s] is not valid: %w", s.Price, err)
		}

		subtotal, err := decimal.NewFromString(s.Subtotal.String())
		if err != nil {
			return nil, fmt.Errorf("subtotal[%s] is not valid: %w", s.Subtotal, err)
		}

		items = append(items, domain.OrderLineItem{
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			UnitPrice:   price,
			Quantity:    s.Quantity,
			Subtotal:    subtotal,
		})
	}

	return items, nil
}

func mapOrderToDomain(row db.Order) (domain.Order, error) {
	status, err := domain.ParseOrderStatus(row.Status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order[%d]: %w", row.ID, err)
	}

	items, err := unmarshalItems(row.Items)
	if err != nil {
		return domain.Order{}, fmt.Errorf("unmarshalItems: %w", err)
	}

	return domain.Order{
		ID: row.ID,
		Customer: domain.CustomerInfo{
			Name:    row.Name,
			Email:   row.Email,
			Phone:   row.Phone,
			Address: row.Address,
		},
		Items:         items,
		Total:         row.Total,
		Status:        status,
		PaymentMethod: row.PaymentMethod,
		CreatedAt:     row.CreatedAt,
	}, nil
}
