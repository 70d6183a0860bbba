// internal/datasync/wire.go
package datasync

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

// Wire documents mirror the client/storage naming convention (camelCase)
// field for field. The mapping is an explicit, exhaustive rename with no
// logic; every entity must round-trip through encode/decode unchanged.

type ProductDoc struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	CostPrice     float64   `json:"costPrice"`
	StockCount    int       `json:"stockCount"`
	VideoURL      *string   `json:"videoUrl,omitempty"`
	IsWishlist    bool      `json:"isWishlist"`
	IsReceived    bool      `json:"isReceived"`
	Platform      string    `json:"platform"`
	ExternalID    *string   `json:"externalId,omitempty"`
	AffiliateLink string    `json:"affiliateLink"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SettingsDoc struct {
	ShopName     string                 `json:"shopName"`
	Tagline      string                 `json:"tagline"`
	Theme        string                 `json:"theme"`
	ThemeConfig  map[string]interface{} `json:"themeConfig,omitempty"`
	BannerURL    string                 `json:"bannerUrl"`
	AssociateTag string                 `json:"associateTag"`
}

type MessageDoc struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"senderId"`
	RecipientID uuid.UUID `json:"recipientId"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
}

type ProfileDoc struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl"`
	Bio         string    `json:"bio"`
	Role        string    `json:"role"`
}

func EncodeProduct(p models.Product) ProductDoc {
	doc := ProductDoc{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		StockCount:    p.StockCount,
		IsWishlist:    p.IsWishlist,
		IsReceived:    p.IsReceived,
		Platform:      string(p.Platform),
		AffiliateLink: p.AffiliateLink,
		Images:        []string(p.Images),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.VideoURL != "" {
		doc.VideoURL = &p.VideoURL
	}
	if p.ExternalID != "" {
		doc.ExternalID = &p.ExternalID
	}
	return doc
}

func DecodeProduct(doc ProductDoc) models.Product {
	p := models.Product{
		Title:         doc.Title,
		Description:   doc.Description,
		Category:      doc.Category,
		Price:         doc.Price,
		CostPrice:     doc.CostPrice,
		StockCount:    doc.StockCount,
		IsWishlist:    doc.IsWishlist,
		IsReceived:    doc.IsReceived,
		Platform:      models.Platform(doc.Platform),
		AffiliateLink: doc.AffiliateLink,
		Images:        pq.StringArray(doc.Images),
	}
	p.ID = doc.ID
	p.CreatedAt = doc.CreatedAt
	p.UpdatedAt = doc.UpdatedAt
	if doc.VideoURL != nil {
		p.VideoURL = *doc.VideoURL
	}
	if doc.ExternalID != nil {
		p.ExternalID = *doc.ExternalID
	}
	return p
}

func EncodeProducts(products []models.Product) []ProductDoc {
	docs := make([]ProductDoc, 0, len(products))
	for _, p := range products {
		docs = append(docs, EncodeProduct(p))
	}
	return docs
}

func EncodeSettings(s models.ShopSettings) SettingsDoc {
	return SettingsDoc{
		ShopName:     s.ShopName,
		Tagline:      s.Tagline,
		Theme:        s.Theme,
		ThemeConfig:  s.ThemeConfig,
		BannerURL:    s.BannerURL,
		AssociateTag: s.AssociateTag,
	}
}

func DecodeSettings(doc SettingsDoc) models.ShopSettings {
	return models.ShopSettings{
		Key:          models.SettingsKey,
		ShopName:     doc.ShopName,
		Tagline:      doc.Tagline,
		Theme:        doc.Theme,
		ThemeConfig:  models.JSONB(doc.ThemeConfig),
		BannerURL:    doc.BannerURL,
		AssociateTag: doc.AssociateTag,
	}
}

func EncodeMessage(m models.Message) MessageDoc {
	return MessageDoc{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Text:        m.Text,
		Timestamp:   m.Timestamp,
	}
}

func DecodeMessage(doc MessageDoc) models.Message {
	m := models.Message{
		SenderID:    doc.SenderID,
		RecipientID: doc.RecipientID,
		Text:        doc.Text,
		Timestamp:   doc.Timestamp,
	}
	m.ID = doc.ID
	return m
}

func EncodeMessages(messages []models.Message) []MessageDoc {
	docs := make([]MessageDoc, 0, len(messages))
	for _, m := range messages {
		docs = append(docs, EncodeMessage(m))
	}
	return docs
}

func EncodeProfile(p models.Profile) ProfileDoc {
	return ProfileDoc{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
		Role:        string(p.Role),
	}
}

func DecodeProfile(doc ProfileDoc) models.Profile {
	p := models.Profile{
		DisplayName: doc.DisplayName,
		AvatarURL:   doc.AvatarURL,
		Bio:         doc.Bio,
		Role:        models.Role(doc.Role),
	}
	p.ID = doc.ID
	return p
}

func EncodeProfiles(profiles []models.Profile) []ProfileDoc {
	docs := make([]ProfileDoc, 0, len(profiles))
	for _, p := range profiles {
		docs = append(docs, EncodeProfile(p))
	}
	return docs
}
