// internal/models/settings.go
package models

// ShopSettings is a single global record keyed by SettingsKey. Updates are
// last-writer-wins; there is no versioning.
type ShopSettings struct {
	BaseModel
	Key          string `json:"key" gorm:"uniqueIndex;size:20;not null"`
	ShopName     string `json:"shop_name" gorm:"size:100"`
	Tagline      string `json:"tagline" gorm:"size:255"`
	Theme        string `json:"theme" gorm:"size:50;default:'default'"`
	ThemeConfig  JSONB  `json:"theme_config" gorm:"type:jsonb"`
	BannerURL    string `json:"banner_url" gorm:"size:500"`
	AssociateTag string `json:"associate_tag" gorm:"size:50"`
}

// SettingsKey is the fixed key of the singleton ShopSettings row.
const SettingsKey = "shop"
