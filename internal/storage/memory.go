package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

var ErrKeyNotFound = errors.New("key not found")

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// MemorySessionStore is the default session backend: an in-process map
// with a TTL, so view state vanishes on restart the same way it would
// on a page unload. Values are stored as JSON to keep parity with the
// Redis backend.
type MemorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		entries: map[string]memoryEntry{},
		ttl:     ttl,
	}
}

func (s *MemorySessionStore) Put(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{payload: payload, expires: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, key string, v any) error {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return ErrKeyNotFound
	}
	return json.Unmarshal(entry.payload, v)
}

func (s *MemorySessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
