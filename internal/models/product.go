// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Title         string         `json:"title" gorm:"size:255;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Category      string         `json:"category" gorm:"size:100;index"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	CostPrice     float64        `json:"cost_price" gorm:"type:decimal(10,2);not null;default:0"`
	StockCount    int            `json:"stock_count" gorm:"not null;default:0"`
	VideoURL      string         `json:"video_url" gorm:"size:500"`
	IsWishlist    bool           `json:"is_wishlist" gorm:"default:false"`
	IsReceived    bool           `json:"is_received" gorm:"default:false"`
	Platform      Platform       `json:"platform" gorm:"type:varchar(20);default:'amazon';index"`
	ExternalID    string         `json:"external_id" gorm:"size:50"`
	AffiliateLink string         `json:"affiliate_link" gorm:"size:500"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
}
