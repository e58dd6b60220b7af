// Package postgres provides the Postgres KV backend: a single kv_state
// table holding one JSONB blob per key.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/storage"
)

// Store implements storage.KV over a dbpg master/slave pool.
type Store struct {
	db *dbpg.DB

	mu   sync.Mutex
	subs map[chan string]struct{}
}

// New wraps an already-connected database pool.
func New(db *dbpg.DB) *Store {
	return &Store{
		db:   db,
		subs: make(map[chan string]struct{}),
	}
}

// Init creates the kv_state table if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_state (
		    key        TEXT PRIMARY KEY,
		    value      JSONB NOT NULL,
		    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
    `

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create kv_state table: %w", err)
	}

	return nil
}

// Get returns the blob stored under key, or storage.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, _ retry.Strategy, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_state
		WHERE key = $1;
    `

	var value []byte
	err := s.db.Master.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}

		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set upserts the blob under key and notifies local subscribers.
func (s *Store) Set(ctx context.Context, _ retry.Strategy, key string, value []byte) error {
	query := `
		INSERT INTO kv_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now();
    `

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	s.notify(key)
	return nil
}

// Delete removes the blob stored under key. Absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_state
		WHERE key = $1;
    `

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	s.notify(key)
	return nil
}

// Subscribe returns a channel of locally changed keys, closed when ctx is
// cancelled. Cross-instance change delivery needs the redis driver.
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

// Close closes the master connection and any slaves.
func (s *Store) Close() error {
	if err := s.db.Master.Close(); err != nil {
		return err
	}

	for _, slave := range s.db.Slaves {
		if err := slave.Close(); err != nil {
			return err
		}
	}

	return nil
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
