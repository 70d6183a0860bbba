// internal/datasync/store.go
package datasync

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

// Store is the sole owner of persisted entities. Writes are fire-and-forget
// from the caller's perspective: errors are logged, never surfaced, and the
// subscription feed (not the write call's return) is the consistency signal.
// Every successful write republishes the full collection snapshot.
type Store struct {
	db *gorm.DB

	Products *Feed[models.Product]
	Settings *Feed[models.ShopSettings]
	Messages *Feed[models.Message]
	Profiles *Feed[models.Profile]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Products: NewFeed[models.Product](),
		Settings: NewFeed[models.ShopSettings](),
		Messages: NewFeed[models.Message](),
		Profiles: NewFeed[models.Profile](),
	}
}

// Prime publishes initial snapshots so early subscribers see current data.
func (s *Store) Prime() {
	s.publishProducts()
	s.publishSettings()
	s.publishMessages()
	s.publishProfiles()
}

// --- Products ---

func (s *Store) ListProducts() []models.Product {
	var products []models.Product
	if err := s.db.Order("created_at ASC").Find(&products).Error; err != nil {
		logrus.WithError(err).Error("Failed to list products, falling back to last snapshot")
		return s.Products.Snapshot()
	}
	return products
}

func (s *Store) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *Store) SaveProduct(product *models.Product) {
	if err := s.db.Save(product).Error; err != nil {
		logrus.WithError(err).WithField("product_id", product.ID).Error("Failed to save product")
		return
	}
	s.publishProducts()
}

func (s *Store) DeleteProduct(id uuid.UUID) {
	if err := s.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		logrus.WithError(err).WithField("product_id", id).Error("Failed to delete product")
		return
	}
	s.publishProducts()
}

// ConfirmReceived applies a checkout confirmation to one product: exactly one
// unit is added regardless of the cart line's quantity, and the received flag
// is set.
func (s *Store) ConfirmReceived(id uuid.UUID) {
	err := s.db.Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_count": gorm.Expr("stock_count + 1"),
			"is_received": true,
		}).Error
	if err != nil {
		logrus.WithError(err).WithField("product_id", id).Error("Failed to apply checkout confirmation")
		return
	}
	s.publishProducts()
}

func (s *Store) publishProducts() {
	var products []models.Product
	if err := s.db.Order("created_at ASC").Find(&products).Error; err != nil {
		logrus.WithError(err).Error("Failed to load product snapshot")
		return
	}
	s.Products.Publish(products)
}

// --- Shop settings (singleton, last-writer-wins) ---

func (s *Store) GetSettings() models.ShopSettings {
	var settings models.ShopSettings
	if err := s.db.First(&settings, "key = ?", models.SettingsKey).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Error("Failed to read shop settings")
		}
		return models.ShopSettings{Key: models.SettingsKey}
	}
	return settings
}

func (s *Store) SaveSettings(settings *models.ShopSettings) {
	settings.Key = models.SettingsKey

	var existing models.ShopSettings
	err := s.db.First(&existing, "key = ?", models.SettingsKey).Error
	if err == nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	}

	if err := s.db.Save(settings).Error; err != nil {
		logrus.WithError(err).Error("Failed to save shop settings")
		return
	}
	s.publishSettings()
}

func (s *Store) publishSettings() {
	s.Settings.Publish([]models.ShopSettings{s.GetSettings()})
}

// --- Messages ---

func (s *Store) ListConversation(a, b uuid.UUID) []models.Message {
	var messages []models.Message
	err := s.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("timestamp ASC").
		Find(&messages).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to list conversation, falling back to empty")
		return nil
	}
	return messages
}

func (s *Store) SaveMessage(message *models.Message) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	if err := s.db.Create(message).Error; err != nil {
		logrus.WithError(err).Error("Failed to save message")
		return
	}
	s.publishMessages()
}

func (s *Store) DeleteMessage(id uuid.UUID) {
	if err := s.db.Delete(&models.Message{}, "id = ?", id).Error; err != nil {
		logrus.WithError(err).WithField("message_id", id).Error("Failed to delete message")
		return
	}
	s.publishMessages()
}

func (s *Store) publishMessages() {
	var messages []models.Message
	if err := s.db.Order("timestamp ASC").Find(&messages).Error; err != nil {
		logrus.WithError(err).Error("Failed to load message snapshot")
		return
	}
	s.Messages.Publish(messages)
}

// --- Profiles ---

func (s *Store) ListProfiles() []models.Profile {
	var profiles []models.Profile
	if err := s.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		logrus.WithError(err).Error("Failed to list profiles")
		return s.Profiles.Snapshot()
	}
	return profiles
}

func (s *Store) GetProfile(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("profile not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &profile, nil
}

func (s *Store) SaveProfile(profile *models.Profile) {
	if err := s.db.Save(profile).Error; err != nil {
		logrus.WithError(err).WithField("profile_id", profile.ID).Error("Failed to save profile")
		return
	}
	s.publishProfiles()
}

func (s *Store) publishProfiles() {
	var profiles []models.Profile
	if err := s.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		logrus.WithError(err).Error("Failed to load profile snapshot")
		return
	}
	s.Profiles.Publish(profiles)
}
