package artifact

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	payload := []byte("full_name,email\nAda,ada@example.edu\n")
	ref, err := store.Write(context.Background(), payload, "upload.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "-upload.csv"))

	got, err := store.Read(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFSStoreWritesAreUnique(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	a, err := store.Write(context.Background(), []byte("one"), "report.xlsx")
	require.NoError(t, err)
	b, err := store.Write(context.Background(), []byte("two"), "report.xlsx")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "same suggested name must not collide")
}

func TestFSStoreSanitizesNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(dir, nil)
	require.NoError(t, err)

	ref, err := store.Write(context.Background(), []byte("x"), "../../etc/pass wd.csv")
	require.NoError(t, err)
	assert.NotContains(t, ref, "..")
	assert.NotContains(t, ref, "/")
	assert.NotContains(t, ref, " ")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ref, entries[0].Name())
}

func TestFSStoreReadRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	secret := filepath.Join(dir, "inside.txt")
	require.NoError(t, os.WriteFile(secret, []byte("inside"), 0o644))

	store, err := NewFSStore(filepath.Join(dir, "artifacts"), nil)
	require.NoError(t, err)

	// a traversal ref collapses to its base name, which does not exist
	_, err = store.Read(context.Background(), "../inside.txt")
	require.Error(t, err)
}

func TestNewFSStoreRequiresDir(t *testing.T) {
	_, err := NewFSStore("", nil)
	require.Error(t, err)
}
