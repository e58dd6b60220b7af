package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/storage"
)

func TestStore_Roundtrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	strategy := retry.Strategy{}

	_, err = s.Get(ctx, strategy, "dnd_settings")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, strategy, "dnd_settings", []byte(`{"enabled":true}`)))

	got, err := s.Get(ctx, strategy, "dnd_settings")
	require.NoError(t, err)
	assert.Equal(t, `{"enabled":true}`, string(got))

	require.NoError(t, s.Delete(ctx, "dnd_settings"))
	_, err = s.Get(ctx, strategy, "dnd_settings")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete(ctx, "dnd_settings"))
}

func TestStore_WritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	strategy := retry.Strategy{}

	require.NoError(t, s.Set(ctx, strategy, "system_notifications", []byte("[]")))

	data, err := os.ReadFile(filepath.Join(dir, "system_notifications.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
