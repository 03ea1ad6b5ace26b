package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/heithemdev/rime-couture-sub001/internal/cache"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(capacity int) (*Store, *fakeClock) {
	s := New(capacity)
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	s.now = clock.now
	return s, clock
}

func TestGetSet_RoundTrip(t *testing.T) {
	s, _ := newTestStore(10)
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("got %q, want %q", got, "v")
	}
}

func TestGet_Miss(t *testing.T) {
	s, _ := newTestStore(10)

	_, err := s.Get(context.Background(), "absent")
	if !errors.Is(err, cache.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestGet_LazilyEvictsExpired(t *testing.T) {
	s, clock := newTestStore(10)
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v"), 30*time.Second)
	clock.t = clock.t.Add(31 * time.Second)

	if _, err := s.Get(ctx, "k"); !errors.Is(err, cache.ErrKeyNotFound) {
		t.Fatalf("expected miss after TTL, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expired entry should be evicted on access, len=%d", s.Len())
	}
}

func TestSet_PurgesExpiredBeforeEvicting(t *testing.T) {
	s, clock := newTestStore(2)
	ctx := context.Background()

	_ = s.Set(ctx, "old", []byte("1"), 10*time.Second)
	_ = s.Set(ctx, "live", []byte("2"), 10*time.Minute)
	clock.t = clock.t.Add(11 * time.Second) // "old" expires

	_ = s.Set(ctx, "new", []byte("3"), 10*time.Minute)

	if _, err := s.Get(ctx, "live"); err != nil {
		t.Error("live entry should survive: expired entries are purged first")
	}
	if _, err := s.Get(ctx, "new"); err != nil {
		t.Error("new entry should be present")
	}
}

func TestSet_EvictsOldestInserted(t *testing.T) {
	s, _ := newTestStore(2)
	ctx := context.Background()

	_ = s.Set(ctx, "first", []byte("1"), time.Minute)
	_ = s.Set(ctx, "second", []byte("2"), time.Minute)

	// Reading "first" must NOT refresh it; eviction is insertion-ordered.
	_, _ = s.Get(ctx, "first")

	_ = s.Set(ctx, "third", []byte("3"), time.Minute)

	if _, err := s.Get(ctx, "first"); !errors.Is(err, cache.ErrKeyNotFound) {
		t.Error("oldest-inserted entry should have been evicted")
	}
	if _, err := s.Get(ctx, "second"); err != nil {
		t.Error("second entry should survive")
	}
	if _, err := s.Get(ctx, "third"); err != nil {
		t.Error("third entry should be present")
	}
}

func TestSet_UpdateKeepsSingleEntry(t *testing.T) {
	s, _ := newTestStore(5)
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v1"), time.Minute)
	_ = s.Set(ctx, "k", []byte("v2"), time.Minute)

	if s.Len() != 1 {
		t.Fatalf("expected single entry, got %d", s.Len())
	}
	got, _ := s.Get(ctx, "k")
	if string(got) != "v2" {
		t.Errorf("got %q, want v2", got)
	}
}

func TestStore_CapacityNeverExceeded(t *testing.T) {
	s, _ := newTestStore(3)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_ = s.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), time.Minute)
	}
	if s.Len() > 3 {
		t.Errorf("capacity exceeded: %d", s.Len())
	}
}
