package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaitland/charart/block"
	"github.com/tmaitland/charart/chroma"
)

func TestPNG(t *testing.T) {
	red := chroma.RGB{R: 255}

	rows := [][]block.ClassifiedBlock{
		row(0, classified(red, block.Solid), classified(red, block.Solid)),
		row(26, classified(red, block.Solid), classified(chroma.White, block.Whitespace)),
	}

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, rows, block.CellWidth, block.CellHeight))

	m, err := png.Decode(&buf)
	require.NoError(t, err)

	b := m.Bounds()
	assert.Equal(t, 28, b.Dx())
	assert.Equal(t, 52, b.Dy())

	r, g, bl, _ := m.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, bl)

	// Whitespace cell is white.
	r, g, bl, _ = m.At(20, 40).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), bl)
}

func TestPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, nil, block.CellWidth, block.CellHeight))
}
