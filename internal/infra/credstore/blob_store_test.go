package credstore

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"testing"

	"tontine/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, bucketURL string) *BlobStore {
	t.Helper()

	store, err := Open(context.Background(), bucketURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestBlobStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, "mem://")

	_, ok, err := store.Get(ctx, entity.CurrentPasswordKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, entity.CurrentPasswordKey, "Temp123!"))

	value, ok, err := store.Get(ctx, entity.CurrentPasswordKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Temp123!", value)

	require.NoError(t, store.Set(ctx, entity.CurrentPasswordKey, "Other456?"))
	value, _, err = store.Get(ctx, entity.CurrentPasswordKey)
	require.NoError(t, err)
	assert.Equal(t, "Other456?", value)

	require.NoError(t, store.Remove(ctx, entity.CurrentPasswordKey))
	_, ok, err = store.Get(ctx, entity.CurrentPasswordKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlobStore_RemoveMissingKey(t *testing.T) {
	store := openTestStore(t, "mem://")

	assert.NoError(t, store.Remove(context.Background(), "missing"))
}

func TestBlobStore_FileBucketSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "credentials")
	bucketURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(dir), RawQuery: "create_dir=true&no_tmp_dir=true"}).String()

	first, err := Open(ctx, bucketURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, entity.CurrentPasswordKey, "Temp123!"))
	require.NoError(t, first.Close())

	second := openTestStore(t, bucketURL)
	value, ok, err := second.Get(ctx, entity.CurrentPasswordKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Temp123!", value)
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nosuch://bucket", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
