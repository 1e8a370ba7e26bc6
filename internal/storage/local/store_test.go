package local

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/files-manager/internal/model"
)

func TestNewStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "files_manager")

	s, err := NewStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, root, s.Root())
}

func TestStore_UploadDownload(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	loc, err := s.Upload(ctx, "abc", bytes.NewReader([]byte("Hello Webstack!\n")))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "abc"), loc)

	rc, err := s.Download(ctx, loc)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Hello Webstack!\n", string(data))

	exists, err := s.Exists(ctx, loc)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_UploadByLocationSuffix(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	loc, err := s.Upload(ctx, "abc", bytes.NewReader([]byte("orig")))
	require.NoError(t, err)

	thumb, err := s.Upload(ctx, loc+"_100", bytes.NewReader([]byte("thumb")))
	require.NoError(t, err)
	assert.Equal(t, loc+"_100", thumb)

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStore_UploadOverwrites(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Upload(ctx, "k", bytes.NewReader([]byte("one")))
	require.NoError(t, err)
	loc, err := s.Upload(ctx, "k", bytes.NewReader([]byte("two")))
	require.NoError(t, err)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestStore_Missing(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Download(ctx, "nope")
	assert.ErrorIs(t, err, model.ErrNotFound)

	exists, err := s.Exists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, s.Delete(ctx, "nope"))
}

func TestStore_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../outside", "/etc/passwd", filepath.Join(s.Root(), "..", "x")} {
		_, err := s.Upload(ctx, key, bytes.NewReader(nil))
		assert.Error(t, err, key)
		_, err = s.Download(ctx, key)
		assert.Error(t, err, key)
		_, err = s.Exists(ctx, key)
		assert.Error(t, err, key)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	loc, err := s.Upload(ctx, "gone", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, loc))

	exists, err := s.Exists(ctx, loc)
	require.NoError(t, err)
	assert.False(t, exists)
}
