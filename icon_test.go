package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.Set(8, 8, color.RGBA{R: 255, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	writePNG(t, path)

	data, err := loadIcon(path)

	require.NoError(t, err)
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestLoadIcon_Missing(t *testing.T) {
	_, err := loadIcon(filepath.Join(t.TempDir(), "missing.png"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadIcon_Undecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := loadIcon(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding icon")
}
