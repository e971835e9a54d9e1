package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"acsd/internal/storage"
	"acsd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileManager(compressor *testutil.MockCompressor) (*FileManager, *testutil.MockStore, *testutil.MockLogger) {
	store := testutil.NewMockStore()
	logger := &testutil.MockLogger{}
	fm := NewFileManager(compressor, store, logger)
	return fm, store, logger
}

func TestFileManager_SaveToFile_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.dat")

	fm, store, _ := newTestFileManager(&testutil.MockCompressor{})
	store.Set(storage.ActivitiesKey, []byte("[]"))

	err := fm.SaveToFile(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	// Temp file should not exist
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.dat")

	fm, store, _ := newTestFileManager(&testutil.MockCompressor{})
	store.Set(storage.ActivitiesKey, []byte(`[{"id":"1"}]`))
	store.Set(storage.AuthTokenKey, []byte(`"token_x"`))

	require.NoError(t, fm.SaveToFile(path))

	restored, _, _ := newTestFileManager(&testutil.MockCompressor{})
	require.NoError(t, restored.LoadFromFile(path))

	val, ok := restored.store.Get(storage.ActivitiesKey)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), val)

	val, ok = restored.store.Get(storage.AuthTokenKey)
	require.True(t, ok)
	assert.Equal(t, []byte(`"token_x"`), val)
}

func TestFileManager_RoundTripWithRealCompressor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.dat")

	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	defer comp.Close()

	store := storage.NewMemoryStore()
	store.Set("k", []byte("v"))
	fm := NewFileManager(comp, store, &testutil.MockLogger{})
	require.NoError(t, fm.SaveToFile(path))

	other := storage.NewMemoryStore()
	fm2 := NewFileManager(comp, other, &testutil.MockLogger{})
	require.NoError(t, fm2.LoadFromFile(path))

	val, ok := other.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), val)
}

func TestFileManager_LoadMissingFileIsNoOp(t *testing.T) {
	fm, store, _ := newTestFileManager(&testutil.MockCompressor{})

	err := fm.LoadFromFile(filepath.Join(t.TempDir(), "absent.dat"))
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestFileManager_LoadCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.dat")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	fm, store, logger := newTestFileManager(&testutil.MockCompressor{})

	err := fm.LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
	assert.NotEmpty(t, logger.Warnings())
}

func TestFileManager_LoadUnsupportedVersionStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.dat")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"entries":{}}`), 0644))

	fm, store, logger := newTestFileManager(&testutil.MockCompressor{})

	err := fm.LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
	assert.NotEmpty(t, logger.Warnings())
}
