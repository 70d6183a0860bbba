// internal/handlers/stream.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/models"
)

// StreamHandler exposes the data sync feeds over server-sent events. Each
// connection receives the full current snapshot on open and again after
// every write, matching the feeds' replace-wholesale model.
type StreamHandler struct {
	store *datasync.Store
}

func NewStreamHandler(store *datasync.Store) *StreamHandler {
	return &StreamHandler{store: store}
}

// GET /stream/products
func (h *StreamHandler) StreamProducts(c *gin.Context) {
	streamFeed(c, h.store.Products, "products", func(products []models.Product) interface{} {
		return datasync.EncodeProducts(products)
	})
}

// GET /stream/settings
func (h *StreamHandler) StreamSettings(c *gin.Context) {
	streamFeed(c, h.store.Settings, "settings", func(all []models.ShopSettings) interface{} {
		if len(all) == 0 {
			return datasync.EncodeSettings(models.ShopSettings{Key: models.SettingsKey})
		}
		return datasync.EncodeSettings(all[0])
	})
}

// GET /stream/messages
func (h *StreamHandler) StreamMessages(c *gin.Context) {
	streamFeed(c, h.store.Messages, "messages", func(messages []models.Message) interface{} {
		return datasync.EncodeMessages(messages)
	})
}

// GET /stream/profiles
func (h *StreamHandler) StreamProfiles(c *gin.Context) {
	streamFeed(c, h.store.Profiles, "profiles", func(profiles []models.Profile) interface{} {
		return datasync.EncodeProfiles(profiles)
	})
}

// streamFeed bridges one feed to an SSE connection. Snapshots arriving while
// a write is in flight collapse to the latest one; a slow client only ever
// skips intermediate states it would have overwritten anyway.
func streamFeed[T any](c *gin.Context, feed *datasync.Feed[T], event string, encode func([]T) interface{}) {
	updates := make(chan []T, 1)

	cancel := feed.Subscribe(func(snapshot []T) {
		// Latest wins: drop the queued snapshot if the client hasn't
		// consumed it yet.
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- snapshot:
		default:
		}
	})
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot := <-updates:
			c.SSEvent(event, encode(snapshot))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
