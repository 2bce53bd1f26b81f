package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
)

// TestRedisCache needs a live Redis instance; set TILER_TEST_REDIS_ADDR
// to run it (e.g. "localhost:6379").
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TILER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TILER_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	c, err := NewRedisCache(ctx, addr)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	key := Key("count", "redis-test")
	defer c.Delete(ctx, key)

	want := []byte("409")
	if err := c.Set(ctx, key, want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || !bytes.Equal(got, want) {
		t.Errorf("(data, hit) = (%q, %v), want (%q, true)", got, hit, want)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("deleted key reported as hit")
	}
}
