// internal/cart/cart.go
package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

// Item is a cart line: a product snapshot plus quantity and order intent.
// Lines are never merged; adding the same product twice yields two lines.
type Item struct {
	ID        uuid.UUID        `json:"id"`
	Product   models.Product   `json:"product"`
	Quantity  int              `json:"quantity"`
	OrderType models.OrderType `json:"order_type"`
}

// Cart accumulates a session's items. It is owned by the client session and
// never persisted; totals are recomputed on every read.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new line with quantity 1. No validation happens here; the
// admin form owns price sanity.
func (c *Cart) Add(product models.Product, orderType models.OrderType) Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := Item{
		ID:        uuid.New(),
		Product:   product,
		Quantity:  1,
		OrderType: orderType,
	}
	c.items = append(c.items, item)
	return item
}

// SetQuantity adjusts an existing line. Quantities below 1 are clamped to 1.
func (c *Cart) SetQuantity(id uuid.UUID, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove drops the first line matching id. Removing an absent id is a no-op.
func (c *Cart) Remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums price x quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Partition splits the lines into gift and purchase groups, preserving the
// relative order within each group.
func (c *Cart) Partition() (gifts, purchases []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.OrderType == models.OrderTypeGift {
			gifts = append(gifts, item)
		} else {
			purchases = append(purchases, item)
		}
	}
	return gifts, purchases
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
