// Package file provides a flat-file KV backend for single-node runs: one
// JSON blob per key under a data directory, written atomically via rename.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/storage"
)

// Store persists each key as <dir>/<key>.json.
type Store struct {
	dir string

	mu   sync.Mutex
	subs map[chan string]struct{}
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &Store{
		dir:  dir,
		subs: make(map[chan string]struct{}),
	}, nil
}

// Get reads the blob stored under key, or storage.ErrKeyNotFound.
func (s *Store) Get(_ context.Context, _ retry.Strategy, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return data, nil
}

// Set writes the blob under key atomically and notifies subscribers.
func (s *Store) Set(_ context.Context, _ retry.Strategy, key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	s.notify(key)
	return nil
}

// Delete removes the blob stored under key. Absent keys are a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	s.notify(key)
	return nil
}

// Subscribe returns a channel of locally changed keys, closed when ctx is
// cancelled. The file backend has no cross-instance feed.
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

// Close is a no-op for the file backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) notify(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subs {
		select {
		case ch <- key:
		default:
		}
	}
}
