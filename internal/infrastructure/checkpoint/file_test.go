package checkpoint

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "lastorder.txt"))

	code, err := store.Read()

	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "lastorder.txt"))

	require.NoError(t, store.Write("A123"))

	code, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "A123", code)
}

func TestFileStore_Overwrite(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "lastorder.txt"))

	require.NoError(t, store.Write("A123"))
	require.NoError(t, store.Write("B456"))

	code, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "B456", code)
}

func TestFileStore_CreatesParentDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "data", "nested", "lastorder.txt"))

	require.NoError(t, store.Write("A123"))

	code, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "A123", code)
}

func TestFileStore_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lastorder.txt")
	store := NewFileStore(path)

	require.NoError(t, store.Write("A123\n"))

	code, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "A123", code)
}
