// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type Role string

const (
	RoleOwner   Role = "owner"
	RoleShopper Role = "shopper"
)

// Platform is the external marketplace a product links out to. Only Amazon
// supports the batched cart handoff; the rest fall back to the plain
// affiliate link.
type Platform string

const (
	PlatformAmazon  Platform = "amazon"
	PlatformEbay    Platform = "ebay"
	PlatformWalmart Platform = "walmart"
)

// OrderType distinguishes a shopper buying from the owner's sellable stock
// (purchase) from a shopper buying a unit shipped to the owner to stock the
// shop (gift).
type OrderType string

const (
	OrderTypePurchase OrderType = "purchase"
	OrderTypeGift     OrderType = "gift"
)

func (t OrderType) Valid() bool {
	return t == OrderTypePurchase || t == OrderTypeGift
}
