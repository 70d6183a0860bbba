package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

func TestComputeReservesDemoUnit(t *testing.T) {
	tests := []struct {
		name         string
		stockCount   int
		videoURL     string
		wantSellable int
		wantCanSell  bool
	}{
		{"empty wishlist product", 0, "", 0, false},
		{"demo unit only", 1, "", 0, false},
		{"demo unit only with video", 1, "https://youtu.be/r1", 0, false},
		{"two units no video", 2, "", 1, false},
		{"two units with video", 2, "https://youtu.be/r1", 1, true},
		{"many units with video", 10, "https://youtu.be/r1", 9, true},
		{"many units no video", 10, "", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(models.Product{StockCount: tt.stockCount, VideoURL: tt.videoURL})
			assert.Equal(t, tt.stockCount, s.Total)
			assert.Equal(t, tt.wantSellable, s.Sellable)
			assert.Equal(t, tt.wantCanSell, s.CanSell)
		})
	}
}

func TestComputeSellableNeverNegative(t *testing.T) {
	for count := 0; count <= 50; count++ {
		s := Compute(models.Product{StockCount: count})
		assert.GreaterOrEqual(t, s.Sellable, 0)

		want := count - 1
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, s.Sellable)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    Availability
	}{
		{"no stock is wishlist only", models.Product{StockCount: 0}, AvailabilityWishlistOnly},
		{"single unit is demo only", models.Product{StockCount: 1, VideoURL: "x"}, AvailabilityDemoOnly},
		{"stocked without video gates on video", models.Product{StockCount: 3}, AvailabilityNeedsVideo},
		{"stocked with video is sellable", models.Product{StockCount: 3, VideoURL: "x"}, AvailabilitySellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.product))
		})
	}
}

// The two canonical catalog scenarios: a brand-new wishlist product must be
// offered as a gift, and a stocked-and-reviewed product as a purchase.
func TestClassifyCatalogScenarios(t *testing.T) {
	p1 := models.Product{StockCount: 0}
	assert.Equal(t, AvailabilityWishlistOnly, Classify(p1))
	assert.False(t, Compute(p1).CanSell)

	p2 := models.Product{StockCount: 3, VideoURL: "x"}
	s := Compute(p2)
	assert.Equal(t, 2, s.Sellable)
	assert.True(t, s.CanSell)
	assert.Equal(t, AvailabilitySellable, Classify(p2))
}
