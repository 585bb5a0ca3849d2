package orders

import (
	"sync"

	"liana/models"
)

// Registry keeps handed-off orders for the lifetime of the process so the
// receipt and QR endpoints can serve them. Nothing is written to disk;
// a restart forgets every order, per the no-persistence rule.
type Registry struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func NewRegistry() *Registry {
	return &Registry{
		orders: make(map[string]models.Order),
	}
}

func (r *Registry) Save(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.OrderID] = order
}

func (r *Registry) Get(orderID string) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	return order, ok
}
