// Package storage defines the key-value persistence contract the
// repositories sit on. State lives as one JSON blob per key; backends also
// expose a change feed so concurrent instances can reload state written by
// someone else, the way browser tabs react to storage events.
package storage

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
)

// Keys of the persisted state blobs.
const (
	KeyDndSettings   = "dnd_settings"
	KeyDndMirror     = "settings_dnd" // stringified effective flag, kept for backward compatibility
	KeyNotifications = "system_notifications"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value store behind the repositories.
type KV interface {
	Get(ctx context.Context, strategy retry.Strategy, key string) ([]byte, error)
	Set(ctx context.Context, strategy retry.Strategy, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Subscribe returns a channel emitting the keys of changed blobs until
	// ctx is cancelled. Backends without a cross-instance feed emit local
	// writes only.
	Subscribe(ctx context.Context) <-chan string

	Close() error
}
