// Package notification persists the notification list.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/model"
	"github.com/urbanshade/notify-center/internal/storage"
)

// ErrNotificationNotFound is returned when a lookup by id matches nothing.
var ErrNotificationNotFound = errors.New("notification not found")

// Repository reads and writes the ordered notification list under the
// system_notifications key, newest first.
type Repository struct {
	kv storage.KV
}

// NewRepository creates a new notification repository.
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// Load returns the persisted list. An absent key yields an empty list;
// unparseable state degrades to an empty list rather than failing startup.
func (r *Repository) Load(ctx context.Context, strategy retry.Strategy) ([]model.SystemNotification, error) {
	raw, err := r.kv.Get(ctx, strategy, storage.KeyNotifications)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("load notifications: %w", err)
	}

	var notifications []model.SystemNotification
	if err := json.Unmarshal(raw, &notifications); err != nil {
		zlog.Logger.Warn().Msg("corrupt notification list, starting empty")
		return nil, nil
	}

	return notifications, nil
}

// Save persists the full list.
func (r *Repository) Save(ctx context.Context, strategy retry.Strategy, notifications []model.SystemNotification) error {
	raw, err := json.Marshal(notifications)
	if err != nil {
		return fmt.Errorf("marshal notifications: %w", err)
	}

	if err := r.kv.Set(ctx, strategy, storage.KeyNotifications, raw); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}

	return nil
}
