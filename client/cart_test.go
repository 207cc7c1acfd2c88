package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ELWAANY111/Verto-Store55/client"
	"github.com/ELWAANY111/Verto-Store55/models"
)

func product(name string, price float64) *models.Product {
	return &models.Product{
		ID:                  primitive.NewObjectID(),
		Name:                name,
		PriceBeforeDiscount: price * 2,
		PriceAfterDiscount:  price,
	}
}

func TestCart_AddSnapshotsDiscountedPrice(t *testing.T) {
	cart := client.NewCart()
	p := product("Sneakers", 59.99)

	cart.Add(p, 1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, 59.99, items[0].Price)

	// A catalog price change after adding must not move the snapshot.
	p.PriceAfterDiscount = 99.99
	assert.Equal(t, 59.99, cart.Items()[0].Price)
}

func TestCart_AddMergesExistingLine(t *testing.T) {
	cart := client.NewCart()
	p := product("Sneakers", 10)

	cart.Add(p, 1)
	cart.Add(p, 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_AddIgnoresNonPositiveQuantity(t *testing.T) {
	cart := client.NewCart()
	cart.Add(product("Sneakers", 10), 0)
	cart.Add(product("Socks", 5), -2)
	assert.Empty(t, cart.Items())
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	cart := client.NewCart()
	p1 := product("Sneakers", 10)
	p2 := product("Socks", 5)
	cart.Add(p1, 1)
	cart.Add(p2, 1)

	assert.True(t, cart.SetQuantity(p1.ID, 4))
	assert.Equal(t, 4, cart.Items()[0].Quantity)

	assert.True(t, cart.Remove(p2.ID))
	assert.Len(t, cart.Items(), 1)

	assert.False(t, cart.SetQuantity(p2.ID, 2), "removed product is no longer in the cart")

	assert.True(t, cart.SetQuantity(p1.ID, 0), "zero quantity removes the line")
	assert.Empty(t, cart.Items())
}

func TestCart_Total(t *testing.T) {
	cart := client.NewCart()
	cart.Add(product("Sneakers", 100), 2)
	cart.Add(product("Socks", 50), 1)

	assert.Equal(t, 250.0, cart.Total())

	cart.Clear()
	assert.Zero(t, cart.Total())
	assert.Empty(t, cart.Items())
}
