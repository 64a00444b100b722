// pkg/memcache/store.go
package mem

import (
	"sync"
	"time"
)

// Store is a process-local mirror with per-entry TTL. It plays the role the
// device-local storage used to play for the mobile client: the last known
// good copy of an entity, consulted when the database cannot be reached.
type Store[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		data: make(map[string]entry[V]),
	}
}

func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Get returns the cached value if present and not expired. Expired entries
// are removed on read; there is no background janitor.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.data[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key)
		return zero, false
	}
	return e.value, true
}

func (s *Store[V]) Evict(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
