package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mangarate/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("WritesFileAndReturnsURL", func(t *testing.T) {
		url, err := store.Put(ctx, "manga-covers/abc.png", []byte("png-bytes"), "image/png")
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080/uploads/manga-covers/abc.png", url)

		data, err := os.ReadFile(filepath.Join(dir, "manga-covers", "abc.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("CreatesNestedDirectories", func(t *testing.T) {
		_, err := store.Put(ctx, "manga-covers/deep/nested.jpg", []byte("x"), "image/jpeg")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "manga-covers", "deep", "nested.jpg"))
		assert.NoError(t, err)
	})

	t.Run("DirExposesRoot", func(t *testing.T) {
		assert.Equal(t, dir, store.Dir())
	})
}
