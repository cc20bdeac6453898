package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const pngData = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABAgMAAABieywaAAAACVBMVEUAAAD///9fX1/S0ecCAAAACXBIWXMAAA7EAAAOxAGVKw4bAAAACklEQVQImWNoAAAAggCByxOyYQAAAABJRU5ErkJggg=="

func TestSaveBase64(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.SaveBase64(pngData, "images/recipes")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "images/recipes/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	raw, err := os.ReadFile(filepath.Join(store.Root, filepath.FromSlash(path)))
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestSaveBase64Rejects(t *testing.T) {
	store := NewStore(t.TempDir())

	cases := []string{
		"",
		"plain text",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64",
		"data:image/png;base64,not valid base64!!!",
		"data:image/tiff;base64,aGVsbG8=",
	}
	for _, data := range cases {
		_, err := store.SaveBase64(data, "images/recipes")
		assert.ErrorIs(t, err, ErrNotBase64Image, data)
	}
}

func TestRemove(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.SaveBase64(pngData, "images/avatars")
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(path))
	assert.NoError(t, store.Remove(path))
	assert.NoError(t, store.Remove(""))
}
