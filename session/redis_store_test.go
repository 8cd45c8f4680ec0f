package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisTokenStoreRoundTrip(t *testing.T) {
	store := NewRedisTokenStore(newTestRedis(t), "")
	ctx := context.Background()

	if err := store.Save(ctx, "tok-redis"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "tok-redis" {
		t.Fatalf("token = %q", token)
	}
}

func TestRedisTokenStoreMissingKeyIsEmpty(t *testing.T) {
	store := NewRedisTokenStore(newTestRedis(t), "custom:key")

	token, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "" {
		t.Fatalf("token = %q, want empty", token)
	}
}

func TestRedisTokenStoreClearIdempotent(t *testing.T) {
	store := NewRedisTokenStore(newTestRedis(t), "")
	ctx := context.Background()

	if err := store.Save(ctx, "tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear #%d: %v", i+1, err)
		}
	}

	token, err := store.Load(ctx)
	if err != nil || token != "" {
		t.Fatalf("Load after clear = %q, %v", token, err)
	}
}

func TestRedisTokenStoreBacksSessionStore(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	first, err := NewStore(ctx, NewRedisTokenStore(client, ""))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := first.SetToken(ctx, "tok-shared"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	second, err := NewStore(ctx, NewRedisTokenStore(client, ""))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	token, ok := second.Token()
	if !ok || token != "tok-shared" {
		t.Fatalf("rehydrated token = %q, %v", token, ok)
	}
}
