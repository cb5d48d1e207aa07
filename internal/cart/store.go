// Package cart holds the visitor's in-session cart.
//
// A Store is not safe for concurrent use; callers serialize access to it
// (see package session).
package cart

import (
	"slices"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Store keeps at most one line per product id, in insertion order.
// Totals are always computed from the current lines.
type Store struct {
	lines []domain.CartLine
}

func NewStore() *Store {
	return &Store{}
}

// Add increments the quantity of the product's line, or appends a new line.
func (s *Store) Add(product domain.Product) {
	if i := s.indexOf(product.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}

	s.lines = append(s.lines, domain.CartLine{Product: product, Quantity: 1})
}

// Remove deletes the product's line; absent ids are ignored.
func (s *Store) Remove(productID int64) {
	if i := s.indexOf(productID); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
}

// UpdateQuantity sets the line's quantity, clamped to at least 1.
// Absent ids are ignored.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.lines[i].Quantity = max(quantity, 1)
}

// Merge folds lines into the cart. Quantities of known products are summed,
// unknown products are appended in the given order, and lines with
// quantity below 1 are skipped.
func (s *Store) Merge(lines []domain.CartLine) {
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}

		if i := s.indexOf(line.Product.ID); i >= 0 {
			s.lines[i].Quantity += line.Quantity
			continue
		}

		s.lines = append(s.lines, line)
	}
}

func (s *Store) Clear() {
	s.lines = nil
}

// Lines returns a copy of the current lines.
func (s *Store) Lines() []domain.CartLine {
	return slices.Clone(s.lines)
}

func (s *Store) Snapshot() domain.CartSnapshot {
	return domain.CartSnapshot{Lines: s.Lines()}
}

func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Store) TotalItems() int {
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the exact sum of price × quantity over all lines.
func (s *Store) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (s *Store) indexOf(productID int64) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool {
		return l.Product.ID == productID
	})
}
