// internal/services/catalog_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/inventory"
	"github.com/sproutlabs/sprout-backend/internal/models"
)

// CatalogItem is a product as the storefront renders it: the wire document
// plus the derived stock view and the offer the shopper should see.
type CatalogItem struct {
	Product      datasync.ProductDoc    `json:"product"`
	Stock        inventory.Stock        `json:"stock"`
	Availability inventory.Availability `json:"availability"`
	Offer        string                 `json:"offer"`
	Note         string                 `json:"note,omitempty"`
}

// CatalogStore is the read slice of the data sync layer the catalog renders
// from.
type CatalogStore interface {
	ListProducts() []models.Product
	GetProduct(id uuid.UUID) (*models.Product, error)
}

type CatalogService struct {
	store CatalogStore
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// List renders the whole catalog for a locale. The derivation in the
// inventory package is the single source of the buy-vs-gift decision.
func (s *CatalogService) List(lang string) []CatalogItem {
	products := s.store.ListProducts()

	items := make([]CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, s.render(lang, p))
	}
	return items
}

func (s *CatalogService) Get(lang string, id uuid.UUID) (*CatalogItem, error) {
	product, err := s.store.GetProduct(id)
	if err != nil {
		return nil, err
	}

	item := s.render(lang, *product)
	return &item, nil
}

func (s *CatalogService) render(lang string, p models.Product) CatalogItem {
	stock := inventory.Compute(p)
	availability := inventory.Classify(p)

	item := CatalogItem{
		Product:      datasync.EncodeProduct(p),
		Stock:        stock,
		Availability: availability,
	}

	switch availability {
	case inventory.AvailabilitySellable:
		item.Offer = i18n.T(lang, i18n.KeyOfferBuyNow)
	case inventory.AvailabilityWishlistOnly:
		item.Offer = i18n.T(lang, i18n.KeyOfferGiftFirstOne)
	case inventory.AvailabilityDemoOnly:
		item.Offer = i18n.T(lang, i18n.KeyOfferGiftToStock)
	case inventory.AvailabilityNeedsVideo:
		// Stocked but video-gated: fall back to the gift-to-stock-up pitch.
		item.Offer = i18n.T(lang, i18n.KeyOfferGiftToStock)
		item.Note = i18n.T(lang, i18n.KeyOfferComingSoon)
	}

	return item
}
