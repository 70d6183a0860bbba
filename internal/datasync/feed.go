// internal/datasync/feed.go
package datasync

import (
	"sync"
)

// Feed is an in-process snapshot-subscription fanout. Subscribers always
// receive the complete current collection, never a delta: the consistency
// model is "replace wholesale with the latest snapshot", so duplicate
// deliveries must be tolerated by consumers (idempotent re-render).
type Feed[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func([]T)
	last   []T
	primed bool
}

func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[int]func([]T))}
}

// Subscribe registers fn and immediately delivers the current snapshot if one
// has been published. The returned cancel func unsubscribes; calling it more
// than once is harmless.
func (f *Feed[T]) Subscribe(fn func([]T)) (cancel func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	snapshot, primed := f.last, f.primed
	f.mu.Unlock()

	if primed {
		fn(snapshot)
	}

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Publish replaces the current snapshot and fans it out to every subscriber.
// Delivery is at-least-once and serialized per publish; no ordering is
// guaranteed between independent publish bursts.
func (f *Feed[T]) Publish(snapshot []T) {
	f.mu.Lock()
	f.last = snapshot
	f.primed = true
	fns := make([]func([]T), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// Snapshot returns the last published collection.
func (f *Feed[T]) Snapshot() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *Feed[T]) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
