// Package dnd persists the Do Not Disturb settings singleton.
package dnd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/model"
	"github.com/urbanshade/notify-center/internal/storage"
)

// Repository reads and writes DND settings under the dnd_settings key and
// maintains the settings_dnd backward-compatibility mirror.
type Repository struct {
	kv storage.KV
}

// NewRepository creates a new DND settings repository.
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// Load returns the persisted settings. Unparseable or absent state degrades
// to defaults; a legacy settings_dnd="true" flag with no settings blob
// migrates to defaults with the manual override enabled. A storage error is
// returned alongside defaults so the caller can start up regardless.
func (r *Repository) Load(ctx context.Context, strategy retry.Strategy) (model.DndSettings, error) {
	raw, err := r.kv.Get(ctx, strategy, storage.KeyDndSettings)
	if err == nil {
		// Unmarshalling over defaults keeps default values for fields the
		// stored blob does not carry.
		settings := model.DefaultDndSettings()
		if jsonErr := json.Unmarshal(raw, &settings); jsonErr == nil {
			return settings, nil
		}

		zlog.Logger.Warn().Msg("corrupt dnd settings, falling back to defaults")
		return model.DefaultDndSettings(), nil
	}

	if !errors.Is(err, storage.ErrKeyNotFound) {
		return model.DefaultDndSettings(), fmt.Errorf("load dnd settings: %w", err)
	}

	// Migrate from the old single-flag format.
	if legacy, legacyErr := r.kv.Get(ctx, strategy, storage.KeyDndMirror); legacyErr == nil && string(legacy) == "true" {
		settings := model.DefaultDndSettings()
		settings.Enabled = true
		return settings, nil
	}

	return model.DefaultDndSettings(), nil
}

// Save persists the settings and refreshes the effective-flag mirror.
func (r *Repository) Save(ctx context.Context, strategy retry.Strategy, settings model.DndSettings, effective bool) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal dnd settings: %w", err)
	}

	if err := r.kv.Set(ctx, strategy, storage.KeyDndSettings, raw); err != nil {
		return fmt.Errorf("save dnd settings: %w", err)
	}

	return r.SaveMirror(ctx, strategy, effective)
}

// SaveMirror writes the effective DND flag under the settings_dnd key. The
// schedule poller calls this on its own when a window boundary flips the
// derived state without any settings mutation.
func (r *Repository) SaveMirror(ctx context.Context, strategy retry.Strategy, effective bool) error {
	value := []byte(strconv.FormatBool(effective))

	if err := r.kv.Set(ctx, strategy, storage.KeyDndMirror, value); err != nil {
		return fmt.Errorf("save dnd mirror: %w", err)
	}

	return nil
}
