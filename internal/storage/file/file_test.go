package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurama/tasktracker/internal/model"
	"github.com/gurama/tasktracker/internal/storage/file"
)

func TestNewKV(t *testing.T) {
	_, err := file.NewKV(file.KVConfig{})
	assert.Error(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err = file.NewKV(file.KVConfig{Dir: dir})
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestKV(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := file.NewKV(file.KVConfig{Dir: dir})
	require.NoError(t, err)

	_, err = kv.Get(ctx, "tasks")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "tasks", []byte(`[]`)))
	got, err := kv.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	raw, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))

	// Same content is a no-op and leaves no temp files around.
	require.NoError(t, kv.Set(ctx, "tasks", []byte(`[]`)))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestKVInvalidKey(t *testing.T) {
	ctx := context.Background()
	kv, err := file.NewKV(file.KVConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	err = kv.Set(ctx, "../escape", []byte(`x`))
	assert.ErrorIs(t, err, model.ErrNotValid)

	_, err = kv.Get(ctx, "a/b")
	assert.ErrorIs(t, err, model.ErrNotValid)
}
