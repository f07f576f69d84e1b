package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// inflight tracks loads in progress so concurrent misses for one key share a
// single loader call.
type inflight struct {
	done chan struct{}
	val  any
	err  error
}

// Store is a TTL cache for read-mostly lookups. A zero TTL disables expiry.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	loads   map[string]*inflight
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		loads:   make(map[string]*inflight),
		ttl:     ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or runs loader once, even under
// concurrent misses, caching the result on success.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	for {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}

		s.mu.Lock()
		if load, ok := s.loads[key]; ok {
			s.mu.Unlock()
			<-load.done
			if load.err != nil {
				return nil, load.err
			}
			return load.val, nil
		}

		load := &inflight{done: make(chan struct{})}
		s.loads[key] = load
		s.mu.Unlock()

		load.val, load.err = loader(ctx)
		if load.err == nil {
			s.Set(ctx, key, load.val)
		}

		s.mu.Lock()
		delete(s.loads, key)
		s.mu.Unlock()
		close(load.done)

		if load.err != nil {
			return nil, load.err
		}
		return load.val, nil
	}
}
