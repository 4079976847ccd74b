package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-an-image.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	backend := DefaultBackend{}
	_, err := backend.DecodeImage(path)
	require.Error(t, err)
}

func TestDecodeImageDecodesPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	dir := t.TempDir()
	path := filepath.Join(dir, "page.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	backend := DefaultBackend{}
	decoded, err := backend.DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Width)
	assert.Equal(t, 3, decoded.Height)
	assert.Len(t, decoded.Gray, 12)
}

func TestDecodeBytesDecodesPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	backend := DefaultBackend{}
	decoded, err := backend.DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Width)
	assert.Equal(t, 2, decoded.Height)
}
