// Package redis provides the Redis KV backend. Writes are published on a
// Pub/Sub channel so every running instance sees changes made by the
// others, the way browser tabs see storage events.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	wbfredis "github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/storage"
)

// ChangeChannel carries the keys of changed blobs between instances.
const ChangeChannel = "notify-center:kv-changes"

// Store implements storage.KV over a wbf Redis client.
type Store struct {
	client *wbfredis.Client
}

// New wraps an already-connected Redis client.
func New(client *wbfredis.Client) *Store {
	return &Store{client: client}
}

// Get returns the blob stored under key, or storage.ErrKeyNotFound when the
// key has never been written.
func (s *Store) Get(ctx context.Context, strategy retry.Strategy, key string) ([]byte, error) {
	value, err := s.client.GetWithRetry(ctx, strategy, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return []byte(value), nil
}

// Set stores the blob under key and announces the change.
func (s *Store) Set(ctx context.Context, strategy retry.Strategy, key string, value []byte) error {
	if err := s.client.SetWithRetry(ctx, strategy, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if err := s.client.Publish(ctx, ChangeChannel, key).Err(); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to publish change")
	}

	return nil
}

// Delete removes key and announces the change.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	if err := s.client.Publish(ctx, ChangeChannel, key).Err(); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to publish change")
	}

	return nil
}

// Subscribe returns a channel of changed keys fed by the Pub/Sub feed. It
// includes changes published by this instance; reloading our own writes is
// an idempotent no-op.
func (s *Store) Subscribe(ctx context.Context) <-chan string {
	sub := s.client.Subscribe(ctx, ChangeChannel)
	out := make(chan string, 16)

	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close pubsub")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				out <- msg.Payload
			}
		}
	}()

	return out
}

// Close closes the underlying client connection.
func (s *Store) Close() error {
	return s.client.Close()
}
