// Package ratelimit throttles sensitive operations per identity with a
// minimum-interval policy over a swappable keyed store.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// ErrLimited indicates the operation was attempted again before the
// minimum interval elapsed.
var ErrLimited = errors.New("rate limited")

// Store tracks the last permitted time per key. Implementations must be
// safe for concurrent use.
type Store interface {
	// Last returns the last recorded time for key and whether one exists.
	Last(key string) (time.Time, bool)

	// Mark records t as the last permitted time for key.
	Mark(key string, t time.Time)

	// Forget removes the entry for key.
	Forget(key string)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

// NewMemoryStore builds an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time)}
}

func (s *MemoryStore) Last(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.entries[key]
	return t, ok
}

func (s *MemoryStore) Mark(key string, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = t
}

func (s *MemoryStore) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Limiter enforces a minimum interval between operations per key.
type Limiter struct {
	store    Store
	interval time.Duration
	now      func() time.Time
}

// New builds a limiter over store. A zero or negative interval disables
// limiting.
func New(store Store, interval time.Duration) *Limiter {
	return &Limiter{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Allow records an attempt for key, returning ErrLimited when the
// previous permitted attempt was less than the minimum interval ago.
func (l *Limiter) Allow(key string) error {
	if l.interval <= 0 {
		return nil
	}

	now := l.now()
	if last, ok := l.store.Last(key); ok && now.Sub(last) < l.interval {
		return ErrLimited
	}

	l.store.Mark(key, now)
	return nil
}
