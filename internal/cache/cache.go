// Package cache provides the in-memory TTL store shared by all endpoint
// handlers. Values live for a fixed TTL and expire on read: a stale entry
// is simply ignored by Get and overwritten by the Set that follows the
// refetch. Nothing is ever evicted, so memory grows with the number of
// distinct keys requested over the process lifetime. That tradeoff is
// deliberate for a low-QPS proxy; the cache is not shared across instances
// and is lost on restart.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the freshness window applied to every entry.
const DefaultTTL = time.Hour

type entry struct {
	storedAt time.Time
	value    any
}

// Store is a key -> (timestamp, value) map with expiry-on-read semantics.
// A mutex serializes access; two concurrent misses for the same key may
// both fetch and both write, and the last write wins, which is fine since
// values for one key converge.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// New returns a Store with the default TTL and wall clock.
func New() *Store {
	return NewWithClock(DefaultTTL, time.Now)
}

// NewWithClock lets tests pin the clock and TTL.
func NewWithClock(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the value stored under key if it is still fresh.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, stamping it with the current time. Any
// previous entry for the key, fresh or stale, is replaced whole.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{storedAt: s.now(), value: value}
}

// Len reports the number of entries held, fresh or stale.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
