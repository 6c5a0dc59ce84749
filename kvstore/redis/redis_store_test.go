package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/arunvm123/eventbooking-demo/kvstore"
	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("skipping Redis integration tests: TEST_REDIS_ADDR not set")
	}

	store, err := NewRedisStore(addr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	if err != nil {
		t.Skipf("skipping Redis integration tests: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestRedisStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()
	t.Cleanup(func() {
		store.client.Del(context.Background(), key)
	})

	if _, err := store.Get(ctx, key); !errors.Is(err, kvstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, key, `{"version":1,"items":[]}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"version":1,"items":[]}` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
