package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/tmaitland/charart/block"
	"github.com/tmaitland/charart/chroma"
)

const maxPreviewColors = 256

// blockColor is the flat color a block contributes to the preview.
// Shaded glyphs cover roughly half their cell on a dark terminal, so
// their color is pulled halfway towards black.
func blockColor(cb block.ClassifiedBlock) color.RGBA {
	switch cb.Class {
	case block.Whitespace:
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	case block.Shaded:
		return color.RGBA{
			uint8(chroma.Lerp(float64(cb.Color.R), 0, 0.5)),
			uint8(chroma.Lerp(float64(cb.Color.G), 0, 0.5)),
			uint8(chroma.Lerp(float64(cb.Color.B), 0, 0.5)),
			0xff,
		}
	default:
		return color.RGBA{cb.Color.R, cb.Color.G, cb.Color.B, 0xff}
	}
}

// PNG writes a paletted mosaic preview of rows to w, one cw by ch
// rectangle per block, quantized to at most 256 colors.
func PNG(w io.Writer, rows [][]block.ClassifiedBlock, cw, ch int) error {
	if len(rows) == 0 {
		return errors.New("render: no rows to draw")
	}

	var width, height int
	for _, row := range rows {
		for _, cb := range row {
			if x := cb.Position.X + cw; x > width {
				width = x
			}
			if y := cb.Position.Y + ch; y > height {
				height = y
			}
		}
	}

	m := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, row := range rows {
		for _, cb := range row {
			r := image.Rect(cb.Position.X, cb.Position.Y, cb.Position.X+cw, cb.Position.Y+ch)
			draw.Draw(m, r, image.NewUniform(blockColor(cb)), image.Point{}, draw.Src)
		}
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, maxPreviewColors), m))
	draw.Draw(pm, pm.Bounds(), m, m.Bounds().Min, draw.Src)

	return png.Encode(w, pm)
}
