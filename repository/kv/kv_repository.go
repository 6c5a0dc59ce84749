package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/arunvm123/eventbooking-demo/kvstore"
	"github.com/arunvm123/eventbooking-demo/model"
	"github.com/arunvm123/eventbooking-demo/repository"
)

const (
	eventsKey   = "events"
	bookingsKey = "bookings"
)

// KVRepository stores each collection as one serialized value under a fixed
// key of a kvstore.Store.
type KVRepository struct {
	store  kvstore.Store
	prefix string
}

func NewKVRepository(store kvstore.Store, keyPrefix string) *KVRepository {
	return &KVRepository{store: store, prefix: keyPrefix}
}

func (r *KVRepository) key(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + ":" + name
}

func (r *KVRepository) LoadEvents(ctx context.Context) ([]model.Event, error) {
	data, err := r.read(ctx, eventsKey)
	if err != nil {
		return nil, err
	}
	return decodeCollection(eventsKey, data, func(e model.Event) bool {
		return e.ID != ""
	})
}

func (r *KVRepository) SaveEvents(ctx context.Context, events []model.Event) error {
	return write(ctx, r, eventsKey, events)
}

func (r *KVRepository) LoadBookings(ctx context.Context) ([]model.Booking, error) {
	data, err := r.read(ctx, bookingsKey)
	if err != nil {
		return nil, err
	}
	return decodeCollection(bookingsKey, data, func(b model.Booking) bool {
		return b.ID != "" && b.EventID != ""
	})
}

func (r *KVRepository) SaveBookings(ctx context.Context, bookings []model.Booking) error {
	return write(ctx, r, bookingsKey, bookings)
}

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *KVRepository) Close() error {
	return r.store.Close()
}

func (r *KVRepository) read(ctx context.Context, name string) (string, error) {
	data, err := r.store.Get(ctx, r.key(name))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", repository.ErrNotStored
		}
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func write[T any](ctx context.Context, r *KVRepository, name string, items []T) error {
	data, err := encodeCollection(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := r.store.Set(ctx, r.key(name), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
