package source

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

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, color.RGBA{0, 128, 255, 255})
		}
	}

	file := filepath.Join(dir, "test.png")
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))

	return file
}

func TestOpenImage(t *testing.T) {
	file := writeTestPNG(t, t.TempDir())

	src, err := Open(file)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 1, src.PageCount())

	m, err := src.RenderPage(0)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Bounds().Dx())

	_, err = src.RenderPage(1)
	assert.ErrorIs(t, err, errPageRange)
}

func TestLoad(t *testing.T) {
	file := writeTestPNG(t, t.TempDir())

	m, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Bounds().Dy())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestOpenUndecodableFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(file, []byte("not an image"), 0o644))

	_, err := Open(file)
	assert.Error(t, err)
}
