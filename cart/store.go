package cart

import (
	"sync"

	"liana/models"
)

// Store is the single source of truth for every session's cart. It is an
// explicit, injectable object rather than a package-level singleton so
// handlers and the checkout flow share one reference.
//
// Carts live only in process memory; there is no persistence layer.
type Store struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*models.Cart),
	}
}

// cart returns the session's cart, creating an empty one on first touch.
// Callers must hold s.mu.
func (s *Store) cart(sessionID string) *models.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &models.Cart{Items: []models.CartItem{}}
		s.carts[sessionID] = c
	}
	return c
}

// AddItem merges the item into the cart: an existing id gets its quantity
// incremented by 1 and every other field of the incoming item is ignored;
// a new id is appended with quantity 1. Never fails.
func (s *Store) AddItem(sessionID string, item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the line item with the given id; absent ids are a
// no-op, so removal is idempotent.
func (s *Store) RemoveItem(sessionID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity absolutely. A quantity of zero or less
// removes the item. Absent ids are a no-op.
func (s *Store) UpdateQuantity(sessionID, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(sessionID, id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally. The open flag is untouched.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).Items = []models.CartItem{}
}

// SetOpen flips the drawer-visibility flag, independent of contents.
func (s *Store) SetOpen(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).IsCartOpen = open
}

// Get returns a snapshot of the session's cart. The items slice is copied
// so callers cannot mutate store state behind the lock.
func (s *Store) Get(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)
	return models.Cart{Items: items, IsCartOpen: c.IsCartOpen}
}

// Items returns a snapshot of just the line items.
func (s *Store) Items(sessionID string) []models.CartItem {
	return s.Get(sessionID).Items
}
