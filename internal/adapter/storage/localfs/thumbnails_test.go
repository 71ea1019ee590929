package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailStore_Publish(t *testing.T) {
	dir := t.TempDir()
	store := NewThumbnailStore(dir, "http://localhost:7890/")
	ctx := context.Background()

	path := store.Path("abc")
	assert.Equal(t, filepath.Join(dir, "abc_thumbnail.jpg"), path)

	_, err := store.Publish(ctx, "abc", path)
	assert.Error(t, err, "file not written yet")

	require.NoError(t, os.WriteFile(path, []byte("jpg"), 0644))
	url, err := store.Publish(ctx, "abc", path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:7890/thumbnails/abc_thumbnail.jpg", url)

	_, err = store.Publish(ctx, "abc", filepath.Join(t.TempDir(), "abc_thumbnail.jpg"))
	assert.Error(t, err, "foreign paths are refused")
}

func TestThumbnailStore_Remove(t *testing.T) {
	store := NewThumbnailStore(t.TempDir(), "")
	ctx := context.Background()
	require.NoError(t, os.WriteFile(store.Path("abc"), []byte("jpg"), 0644))

	require.NoError(t, store.Remove(ctx, "abc"))
	_, err := os.Stat(store.Path("abc"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(ctx, "abc"), "missing file is not an error")
}
