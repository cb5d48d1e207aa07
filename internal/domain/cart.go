package domain

import "github.com/shopspring/decimal"

// CartLine is one product-quantity pairing. Quantity is at least 1.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is a read-only copy of cart lines in insertion order.
type CartSnapshot struct {
	Lines []CartLine
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
