// Package memory implements the cache contract with a process-local,
// capacity-bounded map.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/heithemdev/rime-couture-sub001/internal/cache"
)

// DefaultCapacity bounds the number of live entries.
const DefaultCapacity = 500

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Store is a mutex-guarded TTL map with insertion-order eviction.
//
// Eviction is approximate LRU by insertion order, NOT access order: when
// the store is full it first purges expired entries, then drops the
// oldest-inserted keys. Reads never refresh an entry's position.
type Store struct {
	mu       sync.Mutex
	entries  map[string]entry
	order    []string // insertion order, oldest first
	capacity int
	now      func() time.Time
}

// New creates a memory store with the given capacity (DefaultCapacity
// when non-positive).
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		entries:  make(map[string]entry, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

var _ cache.Store = (*Store)(nil)

// Get returns the value for key, lazily evicting it when expired.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, cache.ErrKeyNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, cache.ErrKeyNotFound
	}
	return e.data, nil
}

// Set stores value under key with the given TTL, evicting old entries
// when at capacity.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		if len(s.entries) >= s.capacity {
			s.purgeExpiredLocked()
		}
		for len(s.entries) >= s.capacity {
			s.evictOldestLocked()
		}
		s.order = append(s.order, key)
	}

	s.entries[key] = entry{data: value, expiresAt: s.now().Add(ttl)}
	return nil
}

// Ping always succeeds for the in-process driver.
func (s *Store) Ping(context.Context) error { return nil }

// Len reports the number of live (possibly expired, not yet evicted) entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) purgeExpiredLocked() {
	now := s.now()
	kept := s.order[:0]
	for _, key := range s.order {
		e, ok := s.entries[key]
		if !ok {
			continue // already lazily evicted by Get
		}
		if now.After(e.expiresAt) {
			delete(s.entries, key)
			continue
		}
		kept = append(kept, key)
	}
	s.order = kept
}

func (s *Store) evictOldestLocked() {
	for len(s.order) > 0 {
		key := s.order[0]
		s.order = s.order[1:]
		if _, ok := s.entries[key]; ok {
			delete(s.entries, key)
			return
		}
	}
}
