package memcache_test

import (
	"context"
	"testing"

	"reviewlens/internal/adapters/memcache"
	"reviewlens/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	c := memcache.New()
	ctx := context.Background()

	var out domain.Report
	if ok, err := c.Get(ctx, "report:a", &out); ok || err != nil {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	in := domain.Report{UploadID: "a", Summary: domain.Summary{ReviewCount: 3}}
	if err := c.Set(ctx, "report:a", in, 3600); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err := c.Get(ctx, "report:a", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if out.Summary.ReviewCount != 3 {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := c.Del(ctx, "report:a"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "report:a", &out); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := memcache.New()
	ctx := context.Background()

	// ttl in the past by construction: -1 makes the entry dead on arrival
	if err := c.Set(ctx, "k", "v", -1); err != nil {
		t.Fatalf("set: %v", err)
	}
	var s string
	if ok, _ := c.Get(ctx, "k", &s); ok {
		t.Fatal("expired entry must be a miss")
	}
}
