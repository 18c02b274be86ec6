package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenReadRoundTripsVerbatim(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps_cache.json"))
	payload := []byte(`[{"id":"celeste","name":"Celeste","sort_order":1}]`)

	require.NoError(t, store.Save(context.Background(), payload))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSaveOverwritesPreviousRecord(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps_cache.json"))

	require.NoError(t, store.Save(context.Background(), []byte(`["old"]`)))
	require.NoError(t, store.Save(context.Background(), []byte(`["new"]`)))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), got)
}

func TestReadMissingFileIsCacheMiss(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps_cache.json"))

	_, err := store.Read(context.Background())
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestReadCorruptFileIsCacheMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"truncated":`), 0o600))

	store := NewStore(path)
	_, err := store.Read(context.Background())
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestReadEmptyFileIsCacheMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps_cache.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store := NewStore(path)
	_, err := store.Read(context.Background())
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "cache", "apps_cache.json"))

	require.NoError(t, store.Save(context.Background(), []byte(`[]`)))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "apps_cache.json"))

	require.NoError(t, store.Save(context.Background(), []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "apps_cache.json", entries[0].Name())
}

func TestSaveObservesCancelledContext(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "apps_cache.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Save(ctx, []byte(`[]`)), context.Canceled)
}
