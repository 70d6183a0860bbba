// internal/models/message.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is append/delete only; there is no edit. Timestamp is the
// per-conversation ordering key.
type Message struct {
	BaseModel
	SenderID    uuid.UUID `json:"sender_id" gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `json:"recipient_id" gorm:"type:uuid;not null;index"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null;index"`
}
