package repository

import (
	"context"
	"errors"

	"github.com/arunvm123/eventbooking-demo/model"
)

// ErrNotStored is returned by the Load methods when the collection has never
// been written. Callers treat it as an empty collection or seed defaults.
var ErrNotStored = errors.New("collection not stored")

// Repository mirrors the two collections to external storage. Saves always
// replace the whole collection.
type Repository interface {
	LoadEvents(ctx context.Context) ([]model.Event, error)
	SaveEvents(ctx context.Context, events []model.Event) error

	LoadBookings(ctx context.Context) ([]model.Booking, error)
	SaveBookings(ctx context.Context, bookings []model.Booking) error

	// Health check
	Ping(ctx context.Context) error
	Close() error
}
