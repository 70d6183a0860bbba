package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutlabs/sprout-backend/internal/cart"
	"github.com/sproutlabs/sprout-backend/internal/models"
)

func item(asin string, qty int) cart.Item {
	return cart.Item{
		Product:  models.Product{ExternalID: asin},
		Quantity: qty,
	}
}

func TestBuildCartURLIndexedPairs(t *testing.T) {
	got := BuildCartURL(DefaultEndpoint, []cart.Item{
		item("B0AAA", 1),
		item("B0BBB", 3),
	}, "sproutshop-20")

	want := DefaultEndpoint +
		"?ASIN.1=B0AAA&Quantity.1=1" +
		"&ASIN.2=B0BBB&Quantity.2=3" +
		"&AssociateTag=sproutshop-20"
	assert.Equal(t, want, got)
}

func TestBuildCartURLOmitsItemsWithoutExternalID(t *testing.T) {
	got := BuildCartURL(DefaultEndpoint, []cart.Item{
		item("B0AAA", 1),
		item("", 5), // local-only product, stays in the cart display
		item("B0CCC", 2),
	}, "tag-20")

	// Numbering is contiguous over the included items.
	assert.Contains(t, got, "ASIN.1=B0AAA")
	assert.Contains(t, got, "ASIN.2=B0CCC")
	assert.Contains(t, got, "Quantity.2=2")
	assert.NotContains(t, got, "ASIN.3")
}

func TestBuildCartURLAppendsTagExactlyOnce(t *testing.T) {
	got := BuildCartURL(DefaultEndpoint, []cart.Item{item("B0AAA", 1)}, "tag-20")
	assert.Equal(t, 1, strings.Count(got, "AssociateTag="))
	assert.True(t, strings.HasSuffix(got, "&AssociateTag=tag-20"))
}

func TestBuildCartURLEmptyCartStillCarriesTag(t *testing.T) {
	got := BuildCartURL(DefaultEndpoint, nil, "tag-20")
	assert.Equal(t, DefaultEndpoint+"?AssociateTag=tag-20", got)
}

func TestBuildCartURLEscapesValues(t *testing.T) {
	got := BuildCartURL(DefaultEndpoint, []cart.Item{item("B0 A&B", 1)}, "tag 20")
	assert.Contains(t, got, "ASIN.1=B0+A%26B")
	assert.Contains(t, got, "AssociateTag=tag+20")
}

func TestBuildCartURLEndpointWithExistingQuery(t *testing.T) {
	got := BuildCartURL("https://example.com/cart?locale=en", []cart.Item{item("B0AAA", 1)}, "t")
	assert.Equal(t, "https://example.com/cart?locale=en&ASIN.1=B0AAA&Quantity.1=1&AssociateTag=t", got)
}
