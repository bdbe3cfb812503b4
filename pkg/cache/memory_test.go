package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(10))
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", "v", time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got string
	if err := mc.Get(ctx, "k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v" {
		t.Fatalf("got %q, want %q", got, "v")
	}
}

func TestMemoryCacheTypedValues(t *testing.T) {
	type record struct {
		Name string
		APY  float64
	}

	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	want := []record{{Name: "aave", APY: 8.5}}
	if err := mc.Set(ctx, "pools", want, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []record
	if err := mc.Get(ctx, "pools", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	var got string
	if err := mc.Get(ctx, "k", &got); err != ErrCacheMiss {
		t.Fatalf("expected cache miss after expiry, got %v", err)
	}

	// expired entry is removed; a fresh put on the same key works
	if err := mc.Set(ctx, "k", "v2", time.Minute); err != nil {
		t.Fatalf("set after expiry: %v", err)
	}
	if err := mc.Get(ctx, "k", &got); err != nil {
		t.Fatalf("get after re-set: %v", err)
	}
	if got != "v2" {
		t.Fatalf("got %q, want %q", got, "v2")
	}
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	_ = mc.Set(ctx, "a", 1, time.Minute)
	_ = mc.Set(ctx, "b", 2, time.Minute)

	// Touch "a" so "b" becomes least recently used.
	var v int
	_ = mc.Get(ctx, "a", &v)

	_ = mc.Set(ctx, "c", 3, time.Minute)

	ok, err := mc.Exists(ctx, "b")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatalf("expected b to be evicted")
	}
}
