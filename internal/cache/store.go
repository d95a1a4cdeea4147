package cache

import (
	"sync"
	"time"
)

// Store is a byte-oriented cache with per-entry TTLs
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Len() int
	Close()
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	stopCh  chan struct{}
	once    sync.Once
}

// NewMemoryStore creates an in-memory store and starts a background
// goroutine that evicts expired entries at the given interval.
func NewMemoryStore(cleanupInterval time.Duration) Store {
	s := &memoryStore{
		entries: make(map[string]entry),
		stopCh:  make(chan struct{}),
	}

	go s.cleanupLoop(cleanupInterval)

	return s
}

func (s *memoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *memoryStore) Set(key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
}

func (s *memoryStore) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *memoryStore) Close() {
	s.once.Do(func() {
		close(s.stopCh)
	})
}

func (s *memoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *memoryStore) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}
