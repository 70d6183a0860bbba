package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

func product(title string, price float64) models.Product {
	p := models.Product{Title: title, Price: price}
	p.ID = uuid.New()
	return p
}

func TestAddCreatesDistinctLines(t *testing.T) {
	c := New()
	p := product("headphones", 29.99)

	first := c.Add(p, models.OrderTypePurchase)
	second := c.Add(p, models.OrderTypePurchase)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, 59.98, c.Total(), 0.001)

	for _, item := range c.Items() {
		assert.Equal(t, 1, item.Quantity)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	c := New()
	c.Add(product("mug", 8), models.OrderTypeGift)

	c.Remove(uuid.New())
	assert.Equal(t, 1, c.Len())
}

func TestAddThenRemoveAllYieldsEmptyCart(t *testing.T) {
	c := New()
	types := []models.OrderType{
		models.OrderTypePurchase,
		models.OrderTypeGift,
		models.OrderTypeGift,
		models.OrderTypePurchase,
	}
	for i, ot := range types {
		c.Add(product("item", float64(i+1)), ot)
	}

	for _, item := range c.Items() {
		c.Remove(item.ID)
	}

	assert.Zero(t, c.Total())
	gifts, purchases := c.Partition()
	assert.Empty(t, gifts)
	assert.Empty(t, purchases)
}

func TestTotalInvariantUnderPartition(t *testing.T) {
	c := New()
	c.Add(product("a", 10), models.OrderTypeGift)
	c.Add(product("b", 2.5), models.OrderTypePurchase)
	c.Add(product("c", 7.25), models.OrderTypeGift)
	c.Add(product("d", 0), models.OrderTypePurchase)

	gifts, purchases := c.Partition()

	sum := func(items []Item) float64 {
		var s float64
		for _, it := range items {
			s += it.Product.Price * float64(it.Quantity)
		}
		return s
	}

	assert.InDelta(t, c.Total(), sum(gifts)+sum(purchases), 0.001)
}

func TestPartitionPreservesRelativeOrder(t *testing.T) {
	c := New()
	c.Add(product("g1", 1), models.OrderTypeGift)
	c.Add(product("p1", 1), models.OrderTypePurchase)
	c.Add(product("g2", 1), models.OrderTypeGift)
	c.Add(product("p2", 1), models.OrderTypePurchase)

	gifts, purchases := c.Partition()

	assert.Equal(t, []string{"g1", "g2"}, []string{gifts[0].Product.Title, gifts[1].Product.Title})
	assert.Equal(t, []string{"p1", "p2"}, []string{purchases[0].Product.Title, purchases[1].Product.Title})
}

func TestSetQuantityClampsToOne(t *testing.T) {
	c := New()
	item := c.Add(product("poster", 12), models.OrderTypePurchase)

	assert.True(t, c.SetQuantity(item.ID, 3))
	assert.InDelta(t, 36, c.Total(), 0.001)

	assert.True(t, c.SetQuantity(item.ID, -5))
	assert.InDelta(t, 12, c.Total(), 0.001)

	assert.False(t, c.SetQuantity(uuid.New(), 2))
}

func TestNonPositivePriceAcceptedAsIs(t *testing.T) {
	c := New()
	c.Add(product("freebie", 0), models.OrderTypePurchase)
	c.Add(product("glitch", -3), models.OrderTypePurchase)

	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, -3, c.Total(), 0.001)
}
