package client

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ELWAANY111/Verto-Store55/models"
)

// Cart is an explicit, caller-owned cart store. All mutation goes through
// its methods; there is no package-level state.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of the product into the cart, snapshotting its
// discounted price. Adding a product already present increases its quantity.
func (c *Cart) Add(product *models.Product, quantity int) {
	if quantity < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ProductID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.PriceAfterDiscount,
		Quantity:  quantity,
	})
}

// SetQuantity changes the quantity of a cart line. A quantity below one
// removes the line. It reports whether the product was in the cart.
func (c *Cart) SetQuantity(productID primitive.ObjectID, quantity int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ProductID == productID {
			if quantity < 1 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// Remove deletes a product line from the cart. It reports whether the
// product was present.
func (c *Cart) Remove(productID primitive.ObjectID) bool {
	return c.SetQuantity(productID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums price times quantity across the cart.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
