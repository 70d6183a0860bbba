package datasync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutlabs/sprout-backend/internal/models"
)

func TestSubscribeDeliversCurrentSnapshotImmediately(t *testing.T) {
	feed := NewFeed[models.Product]()
	feed.Publish([]models.Product{{Title: "lamp"}})

	var got [][]models.Product
	cancel := feed.Subscribe(func(snapshot []models.Product) {
		got = append(got, snapshot)
	})
	defer cancel()

	assert.Len(t, got, 1)
	assert.Equal(t, "lamp", got[0][0].Title)
}

func TestSubscribeBeforeFirstPublishDeliversNothing(t *testing.T) {
	feed := NewFeed[models.Product]()

	calls := 0
	cancel := feed.Subscribe(func([]models.Product) { calls++ })
	defer cancel()

	assert.Zero(t, calls)

	feed.Publish(nil)
	assert.Equal(t, 1, calls)
}

func TestPublishFansOutFullSnapshot(t *testing.T) {
	feed := NewFeed[models.Product]()

	var a, b []models.Product
	cancelA := feed.Subscribe(func(s []models.Product) { a = s })
	cancelB := feed.Subscribe(func(s []models.Product) { b = s })
	defer cancelA()
	defer cancelB()

	snapshot := []models.Product{{Title: "lamp"}, {Title: "mug"}}
	feed.Publish(snapshot)

	assert.Equal(t, snapshot, a)
	assert.Equal(t, snapshot, b)
}

// Consumers replace state wholesale, so delivering the same snapshot twice
// must be observationally a no-op, not a crash or a diverging state.
func TestDuplicateSnapshotDeliveryIsIdempotent(t *testing.T) {
	feed := NewFeed[models.Product]()

	var state []models.Product
	cancel := feed.Subscribe(func(s []models.Product) { state = s })
	defer cancel()

	snapshot := []models.Product{{Title: "lamp", StockCount: 2}}
	feed.Publish(snapshot)
	after := state

	feed.Publish(snapshot)
	assert.Equal(t, after, state)
	assert.Equal(t, snapshot, feed.Snapshot())
}

func TestCancelStopsDelivery(t *testing.T) {
	feed := NewFeed[models.Product]()

	calls := 0
	cancel := feed.Subscribe(func([]models.Product) { calls++ })

	feed.Publish(nil)
	cancel()
	cancel() // double-cancel is harmless
	feed.Publish(nil)

	assert.Equal(t, 1, calls)
	assert.Zero(t, feed.SubscriberCount())
}
