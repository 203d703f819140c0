package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxVisitors bounds a store built by NewMemoryStore.
const DefaultMaxVisitors = 10000

// MemoryStore is a Store held in process memory; state is lost on restart.
// Once full, the least recently seen visitor is dropped.
type MemoryStore[T any] struct {
	mu    sync.Mutex
	cache *lru.Cache[string, T]
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return NewBoundedMemoryStore[T](DefaultMaxVisitors)
}

// NewBoundedMemoryStore keeps at most maxVisitors entries. A non-positive
// limit means DefaultMaxVisitors.
func NewBoundedMemoryStore[T any](maxVisitors int) *MemoryStore[T] {
	if maxVisitors <= 0 {
		maxVisitors = DefaultMaxVisitors
	}
	cache, _ := lru.New[string, T](maxVisitors) // errors only on a non-positive size
	return &MemoryStore[T]{cache: cache}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(id)
	return v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(id, v)
	return nil
}

func (s *MemoryStore[T]) Update(_ context.Context, id string, fn func(cur T, found bool) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.cache.Get(id)
	next := fn(cur, ok)
	s.cache.Add(id, next)
	return next, nil
}

// Len reports how many visitors are stored.
func (s *MemoryStore[T]) Len() int {
	return s.cache.Len()
}

// NewID returns a random 128-bit hex visitor ID.
func (s *MemoryStore[T]) NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
