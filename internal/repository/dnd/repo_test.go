package dnd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/model"
	"github.com/urbanshade/notify-center/internal/storage"
	"github.com/urbanshade/notify-center/internal/storage/memory"
)

func TestRepository_Load_Defaults(t *testing.T) {
	repo := NewRepository(memory.New())

	settings, err := repo.Load(context.Background(), retry.Strategy{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDndSettings(), settings)
}

func TestRepository_Roundtrip(t *testing.T) {
	repo := NewRepository(memory.New())
	strategy := retry.Strategy{}

	settings := model.DefaultDndSettings()
	settings.Enabled = true
	settings.Schedule.Enabled = true
	settings.Schedule.Days = []int{1, 2, 3}

	require.NoError(t, repo.Save(context.Background(), strategy, settings, true))

	loaded, err := repo.Load(context.Background(), strategy)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestRepository_Load_CorruptFallsBack(t *testing.T) {
	kv := memory.New()
	strategy := retry.Strategy{}

	require.NoError(t, kv.Set(context.Background(), strategy, storage.KeyDndSettings, []byte("{not json")))

	repo := NewRepository(kv)
	settings, err := repo.Load(context.Background(), strategy)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDndSettings(), settings)
}

func TestRepository_Load_PartialBlobKeepsDefaults(t *testing.T) {
	kv := memory.New()
	strategy := retry.Strategy{}

	require.NoError(t, kv.Set(context.Background(), strategy, storage.KeyDndSettings, []byte(`{"enabled":true}`)))

	repo := NewRepository(kv)
	settings, err := repo.Load(context.Background(), strategy)
	require.NoError(t, err)

	assert.True(t, settings.Enabled)
	// Fields absent from the blob keep their defaults.
	assert.True(t, settings.AllowPriority)
	assert.Equal(t, 22, settings.Schedule.StartHour)
}

func TestRepository_Load_LegacyMigration(t *testing.T) {
	kv := memory.New()
	strategy := retry.Strategy{}

	// Old single-flag format, no settings blob.
	require.NoError(t, kv.Set(context.Background(), strategy, storage.KeyDndMirror, []byte("true")))

	repo := NewRepository(kv)
	settings, err := repo.Load(context.Background(), strategy)
	require.NoError(t, err)
	assert.True(t, settings.Enabled)
}

func TestRepository_SaveMirror(t *testing.T) {
	kv := memory.New()
	strategy := retry.Strategy{}
	repo := NewRepository(kv)

	require.NoError(t, repo.SaveMirror(context.Background(), strategy, false))

	raw, err := kv.Get(context.Background(), strategy, storage.KeyDndMirror)
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))
}
