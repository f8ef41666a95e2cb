package filestorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "uploads/")
	require.NoError(t, err)
	assert.Equal(t, "/uploads", storage.URLPrefix())

	stored, err := storage.Save(ctx, Incoming{OriginalName: "Resume.PDF", Content: []byte("%PDF-1.4 test"), MimeType: MIMEPDF})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored.Name, ".pdf"))
	assert.Equal(t, "Resume.PDF", stored.OriginalName)
	assert.Equal(t, int64(len("%PDF-1.4 test")), stored.Size)
	assert.FileExists(t, filepath.Join(dir, stored.Name))
	assert.True(t, storage.Owns(stored.Path))

	body, contentType, err := storage.Open(ctx, stored.Path)
	require.NoError(t, err)
	content, err := io.ReadAll(body)
	require.NoError(t, body.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(content))
	assert.Equal(t, "application/pdf", contentType)

	require.NoError(t, storage.Delete(ctx, stored.Path))
	assert.NoFileExists(t, filepath.Join(dir, stored.Name))

	// deleting twice is not an error
	require.NoError(t, storage.Delete(ctx, stored.Path))

	_, _, err = storage.Open(ctx, stored.Path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_UniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	a, err := storage.Save(context.Background(), Incoming{OriginalName: "photo.png", Content: []byte("a")})
	require.NoError(t, err)
	b, err := storage.Save(context.Background(), Incoming{OriginalName: "photo.png", Content: []byte("b")})
	require.NoError(t, err)
	assert.NotEqual(t, a.Path, b.Path)
}

func TestLocalStorage_RejectsForeignReferences(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(filepath.Join(dir, "uploads"), "/uploads")
	require.NoError(t, err)

	secret := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("x"), 0o600))

	for _, ref := range []string{
		"/uploads/../secret.txt",
		"/uploads/",
		"/uploads/nested/file.png",
		"https://cdn.example.com/uploads/file.png",
		"/static/file.png",
		"",
	} {
		assert.False(t, storage.Owns(ref), ref)
		assert.ErrorIs(t, storage.Delete(context.Background(), ref), ErrNotManaged, ref)
		_, _, err := storage.Open(context.Background(), ref)
		assert.ErrorIs(t, err, ErrNotManaged, ref)
	}
	assert.FileExists(t, secret)
}
