package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-config-service/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewFileStore(t.TempDir(), logger)
}

func upload(name, content string) *models.FileUpload {
	return &models.FileUpload{
		FileName: name,
		Content:  base64.StdEncoding.EncodeToString([]byte(content)),
	}
}

func TestStoreWritesUnderDir(t *testing.T) {
	store := newTestStore(t)

	relative, err := store.Store(upload("logo.png", "png-bytes"), "logos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relative, "logos"+string(os.PathSeparator)))
	assert.Equal(t, ".png", filepath.Ext(relative))

	data, err := os.ReadFile(filepath.Join(store.root, relative))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStoreRandomizesName(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Store(upload("logo.png", "a"), "logos")
	require.NoError(t, err)
	second, err := store.Store(upload("logo.png", "b"), "logos")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestStoreAcceptsDataURI(t *testing.T) {
	store := newTestStore(t)

	encoded := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	relative, err := store.Store(&models.FileUpload{
		FileName: "logo.png",
		Content:  "data:image/png;base64," + encoded,
	}, "logos")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.root, relative))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestStoreRejectsEmptyAndBadUploads(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store(nil, "logos")
	assert.ErrorIs(t, err, ErrEmptyUpload)

	_, err = store.Store(&models.FileUpload{FileName: "x.png", Content: "   "}, "logos")
	assert.ErrorIs(t, err, ErrEmptyUpload)

	_, err = store.Store(&models.FileUpload{FileName: "x.png", Content: "not-base64!!"}, "logos")
	assert.ErrorIs(t, err, ErrBadUpload)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	relative, err := store.Store(upload("logo.png", "bytes"), "logos")
	require.NoError(t, err)

	require.NoError(t, store.Delete(relative))
	require.NoError(t, store.Delete(relative), "second delete must not fail")
	require.NoError(t, store.Delete(""), "blank path is a no-op")
}

func TestDeleteNeverLeavesRoot(t *testing.T) {
	store := newTestStore(t)

	outside := filepath.Join(filepath.Dir(store.root), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	// Traversal segments are stripped, so the path resolves inside the
	// root and the file next to it is untouched.
	require.NoError(t, store.Delete("../outside.txt"))
	_, err := os.Stat(outside)
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete("."), ErrOutsideRoot)
}
