// Package cart implements the till's order-in-progress: an ordered list of
// product lines with merge-on-add quantity semantics and a derived total.
package cart

import (
	"sync"

	"github.com/rainielmontanez/FSSPOS/models"
)

// Cart is one terminal's line items in insertion order. It is not safe for
// concurrent use on its own; Store serializes access per terminal.
type Cart struct {
	lines []models.CartLine
}

// AddItem merges into an existing line for the same product id, or appends a
// new line with quantity 1. Stock is advisory and deliberately not checked
// here.
func (c *Cart) AddItem(p models.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity sets the line's quantity exactly; a quantity of zero or
// below removes the line. Unknown product ids are a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// RemoveItem deletes the line if present; no-op otherwise.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Total is recomputed from the current lines on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// View returns a snapshot of the lines and the current total.
func (c *Cart) View() models.CartView {
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return models.CartView{Lines: lines, Total: c.Total()}
}

// Store holds one cart per terminal user. Carts are ephemeral: they live in
// memory only and do not survive a restart.
type Store struct {
	mu    sync.Mutex
	carts map[int64]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[int64]*Cart)}
}

func (s *Store) AddItem(userID int64, p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).AddItem(p)
}

func (s *Store) UpdateQuantity(userID, productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).UpdateQuantity(productID, quantity)
}

func (s *Store) RemoveItem(userID, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).RemoveItem(productID)
}

func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Clear()
}

func (s *Store) View(userID int64) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).View()
}

// caller holds mu
func (s *Store) cart(userID int64) *Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	return c
}
