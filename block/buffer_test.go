package block

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	m.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	m.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	m.Set(1, 1, color.NRGBA{255, 255, 255, 255})

	buf := FromImage(m)
	require.Equal(t, 2, buf.Width)
	require.Equal(t, 2, buf.Height)
	require.Len(t, buf.Pix, 16)

	assert.Equal(t, []byte{255, 0, 0, 255}, buf.Pix[0:4])
	assert.Equal(t, []byte{0, 255, 0, 255}, buf.Pix[4:8])
	assert.Equal(t, []byte{0, 0, 255, 255}, buf.Pix[8:12])
	assert.Equal(t, []byte{255, 255, 255, 255}, buf.Pix[12:16])
}

func TestFromImageNormalizesBounds(t *testing.T) {
	// A sub-image keeps its parent's coordinate space; the buffer must
	// start at (0, 0) regardless.
	m := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 5; y < 10; y++ {
		for x := 5; x < 10; x++ {
			m.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}

	sub := m.SubImage(image.Rect(5, 5, 10, 10))
	buf := FromImage(sub)

	require.Equal(t, 5, buf.Width)
	require.Equal(t, 5, buf.Height)
	assert.Equal(t, []byte{200, 100, 50, 255}, buf.Pix[0:4])
}
