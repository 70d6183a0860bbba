package datasync

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

func TestProductRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	full := models.Product{
		Title:         "wireless earbuds",
		Description:   "great sound",
		Category:      "audio",
		Price:         49.99,
		CostPrice:     30,
		StockCount:    4,
		VideoURL:      "https://youtu.be/review1",
		IsWishlist:    false,
		IsReceived:    true,
		Platform:      models.PlatformAmazon,
		ExternalID:    "B0EXAMPLE1",
		AffiliateLink: "https://amzn.to/x",
		Images:        pq.StringArray{"a.jpg", "b.jpg"},
	}
	full.ID = uuid.New()
	full.CreatedAt = now
	full.UpdatedAt = now

	assert.Equal(t, full, DecodeProduct(EncodeProduct(full)))
}

func TestProductRoundTripOptionalFieldsEmpty(t *testing.T) {
	bare := models.Product{Title: "wishlist item", Platform: models.PlatformEbay}
	bare.ID = uuid.New()

	doc := EncodeProduct(bare)
	assert.Nil(t, doc.VideoURL)
	assert.Nil(t, doc.ExternalID)

	assert.Equal(t, bare, DecodeProduct(doc))
}

func TestProductWireNamingIsCamelCase(t *testing.T) {
	p := models.Product{StockCount: 3, VideoURL: "v", ExternalID: "B0X"}
	data, err := json.Marshal(EncodeProduct(p))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "stockCount")
	assert.Contains(t, raw, "videoUrl")
	assert.Contains(t, raw, "externalId")
	assert.NotContains(t, raw, "stock_count")
}

func TestSettingsRoundTrip(t *testing.T) {
	s := models.ShopSettings{
		Key:          models.SettingsKey,
		ShopName:     "Ava's Finds",
		Tagline:      "tested by me first",
		Theme:        "bubblegum",
		ThemeConfig:  models.JSONB{"accent": "#ff70a6", "darkMode": true},
		BannerURL:    "https://cdn/x.png",
		AssociateTag: "avasfinds-20",
	}

	decoded := DecodeSettings(EncodeSettings(s))
	assert.Equal(t, s.ShopName, decoded.ShopName)
	assert.Equal(t, s.Tagline, decoded.Tagline)
	assert.Equal(t, s.Theme, decoded.Theme)
	assert.Equal(t, s.ThemeConfig, decoded.ThemeConfig)
	assert.Equal(t, s.BannerURL, decoded.BannerURL)
	assert.Equal(t, s.AssociateTag, decoded.AssociateTag)
	assert.Equal(t, models.SettingsKey, decoded.Key)
}

func TestMessageRoundTrip(t *testing.T) {
	m := models.Message{
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Text:        "is the lamp still available?",
		Timestamp:   time.Now().Truncate(time.Millisecond),
	}
	m.ID = uuid.New()

	assert.Equal(t, m, DecodeMessage(EncodeMessage(m)))
}

func TestProfileRoundTrip(t *testing.T) {
	p := models.Profile{
		DisplayName: "Ava",
		AvatarURL:   "https://cdn/ava.png",
		Bio:         "shop owner",
		Role:        models.RoleOwner,
	}
	p.ID = uuid.New()

	assert.Equal(t, p, DecodeProfile(EncodeProfile(p)))
}
