// Package memory provides an in-process KV backend. It backs unit tests and
// carries the subscriber fan-out shared with the file backend.
package memory

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/storage"
)

// Store is a mutex-guarded map implementing storage.KV.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
	subs map[chan string]struct{}
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		data: make(map[string][]byte),
		subs: make(map[chan string]struct{}),
	}
}

// Get returns the value stored under key, or storage.ErrKeyNotFound.
func (s *Store) Get(_ context.Context, _ retry.Strategy, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key and notifies subscribers.
func (s *Store) Set(_ context.Context, _ retry.Strategy, key string, value []byte) error {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), value...)
	s.mu.Unlock()

	s.notify(key)
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	s.notify(key)
	return nil
}

// Subscribe returns a channel of changed keys, closed when ctx is cancelled.
func (s *Store) Subscribe(ctx context.Context) <-chan string {
	ch := make(chan string, 16)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) notify(key string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subs {
		select {
		case ch <- key:
		default: // slow subscriber, drop rather than block a write
		}
	}
}
