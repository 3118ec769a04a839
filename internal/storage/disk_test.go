package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("read failure")
}

func TestDiskPut(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewDisk(dir)
	require.NoError(t, err)

	info, err := store.Put(ctx, "upload-1-abcd1234.txt", strings.NewReader("hello world"))
	require.NoError(t, err)

	assert.Equal(t, "upload-1-abcd1234.txt", info.Name)
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, filepath.Join(dir, "upload-1-abcd1234.txt"), info.Path)

	b, err := os.ReadFile(info.Path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(b))
}

func TestDiskPutLeavesNoPartialFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewDisk(dir)
	require.NoError(t, err)

	_, err = store.Put(ctx, "upload-2-abcd1234.txt", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file, partial or final, may remain after a failed write")
}

func TestDiskDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewDisk(dir)
	require.NoError(t, err)

	info, err := store.Put(ctx, "upload-3-abcd1234.txt", strings.NewReader("bye"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, info.Path))
	_, statErr := os.Stat(info.Path)
	assert.True(t, os.IsNotExist(statErr))

	// Already-absent file is success, not an error.
	assert.NoError(t, store.Delete(ctx, info.Path))
}

func TestNewDiskRequiresDir(t *testing.T) {
	_, err := NewDisk("")
	assert.Error(t, err)
}
