// Package journal mirrors committed store mutations to an external log.
package journal

import (
	"context"

	"github.com/arunvm123/eventbooking-demo/model"
)

// Publisher receives one entry per committed mutation. Publish failures never
// roll back the mutation; implementations log and move on.
type Publisher interface {
	Publish(ctx context.Context, entry model.JournalEntry)
	Close() error
}

// Noop discards every entry. It is used when no journal is configured.
type Noop struct{}

func (Noop) Publish(context.Context, model.JournalEntry) {}

func (Noop) Close() error { return nil }
