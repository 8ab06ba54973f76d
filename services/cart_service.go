package services

import (
	"errors"
	"sync"

	"storefront/entity"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

// CartService owns the single in-memory cart of the session. Lines keep
// their insertion order and carry a stable synthetic id, so callers address
// lines by id rather than by a position that shifts under removal. Every
// handler goroutine goes through the mutex; there is no persistence.
type CartService struct {
	mu     sync.Mutex
	nextID int64
	items  []entity.CartItem
}

func NewCartService() *CartService { return &CartService{} }

// Add appends a new line with quantity 1. Lines are never merged: the same
// menu item added twice stays two lines, each with its own customization.
func (s *CartService) Add(menu entity.MenuItem, rest entity.Restaurant, cust *entity.ItemCustomization) entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	line := entity.CartItem{
		ID:            s.nextID,
		MenuItem:      menu,
		Restaurant:    rest,
		Qty:           1,
		Customization: cust,
	}
	s.items = append(s.items, line)
	return line
}

// Remove drops the line with the given id. Unknown ids are a silent no-op.
func (s *CartService) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *CartService) removeLocked(id int64) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQty replaces a line's quantity in place. Zero removes the line,
// matching Remove exactly; negative quantities are rejected.
func (s *CartService) UpdateQty(id int64, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if qty == 0 {
		s.removeLocked(id)
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Qty = qty
			return nil
		}
	}
	return nil
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the ordered line list.
func (s *CartService) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the total item count (sum of quantities), not the line count.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Qty
	}
	return n
}

// Subtotal sums unit price times quantity over all lines.
func (s *CartService) Subtotal() int64 {
	return Aggregate(s.Items()).Subtotal
}

// Summary computes the full aggregate (subtotal, fee, tax, total).
func (s *CartService) Summary() entity.CartSummary {
	return Aggregate(s.Items())
}
