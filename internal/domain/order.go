package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentCashOnDelivery is the only payment method recorded on orders.
const PaymentCashOnDelivery = "cash_on_delivery"

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// strictTransitions lists allowed moves when the lifecycle is enforced.
var strictTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

// CheckTransition reports whether an admin may move an order from s to next.
// pending is never a valid target. Without strict, any other change is allowed.
func (s OrderStatus) CheckTransition(next OrderStatus, strict bool) error {
	if next == OrderStatusPending {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if _, err := ParseOrderStatus(string(next)); err != nil {
		return err
	}
	if s == next {
		return ErrStatusUnchanged
	}
	if !strict {
		return nil
	}
	for _, allowed := range strictTransitions[s] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
}

// OrderLineItem is a frozen, priced snapshot of a cart line.
type OrderLineItem struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

// NewOrder is what gets handed to storage; ID and CreatedAt are assigned there.
type NewOrder struct {
	Customer      CustomerInfo
	Items         []OrderLineItem
	Total         decimal.Decimal
	Status        OrderStatus
	PaymentMethod string
}

// OrderRef identifies a stored order.
type OrderRef struct {
	ID        int64
	CreatedAt time.Time
}

type Order struct {
	ID            int64
	Customer      CustomerInfo
	Items         []OrderLineItem
	Total         decimal.Decimal
	Status        OrderStatus
	PaymentMethod string

	CreatedAt time.Time
}
