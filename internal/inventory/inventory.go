// internal/inventory/inventory.go
package inventory

import (
	"github.com/sproutlabs/sprout-backend/internal/models"
)

// Stock is the derived stock view of a product. The first physical unit is
// always reserved as the demo/review unit and is never sellable.
type Stock struct {
	Total    int  `json:"total"`
	Sellable int  `json:"sellable"`
	CanSell  bool `json:"can_sell"`
}

// Availability classifies what the catalog can offer a shopper for a product.
type Availability string

const (
	// AvailabilityWishlistOnly: no units exist yet, not even a demo unit.
	AvailabilityWishlistOnly Availability = "wishlist_only"
	// AvailabilityDemoOnly: exactly one unit exists and it is reserved.
	AvailabilityDemoOnly Availability = "demo_only"
	// AvailabilityNeedsVideo: sellable units exist but no review video yet.
	AvailabilityNeedsVideo Availability = "needs_video"
	// AvailabilitySellable: sellable units exist and the review video is up.
	AvailabilitySellable Availability = "sellable"
)

// Compute derives the stock view from a product. Pure; every surface that
// decides between the buy and gift flows must go through this.
func Compute(p models.Product) Stock {
	sellable := p.StockCount - 1
	if sellable < 0 {
		sellable = 0
	}

	return Stock{
		Total:    p.StockCount,
		Sellable: sellable,
		CanSell:  sellable > 0 && p.VideoURL != "",
	}
}

// Classify maps a product to the availability bucket the catalog renders.
func Classify(p models.Product) Availability {
	s := Compute(p)

	switch {
	case s.Total == 0:
		return AvailabilityWishlistOnly
	case s.Sellable == 0:
		return AvailabilityDemoOnly
	case !s.CanSell:
		return AvailabilityNeedsVideo
	default:
		return AvailabilitySellable
	}
}
