package block

import (
	"errors"
	"fmt"
	"math"

	"github.com/tmaitland/charart/chroma"
)

var (
	// ErrEmptyImage is returned when the buffer has a non-positive
	// width or height.
	ErrEmptyImage = errors.New("block: empty or zero-size image")
	// ErrShortPixelData is returned when the buffer does not hold
	// width*height*4 bytes.
	ErrShortPixelData = errors.New("block: not enough pixel data")
)

// Sample partitions buf into a grid of cw by ch cells and returns one
// Block per retained cell, in row-major order. That iteration order is
// the only ordering guarantee and is what Rows relies on.
//
// A cell whose origin starts past dimension - step/2 would be more than
// half cut off by the image edge; such cells are dropped entirely rather
// than clipped. Cells that overhang by half a cell or less are sampled
// over the pixels that actually exist.
//
// The representative color is the quadratic mean of each channel over
// the cell window: sqrt of the mean of squares, rounded to nearest. The
// quadratic mean weighs bright pixels more heavily than an arithmetic
// mean, which preserves the perceived saturation of mixed-color cells
// the way composited light intensity does. Alpha is ignored.
func Sample(buf *Buffer, cw, ch int) ([]Block, error) {
	if cw <= 0 || ch <= 0 {
		return nil, fmt.Errorf("block: invalid cell size %dx%d", cw, ch)
	}
	if buf == nil || buf.Width <= 0 || buf.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if len(buf.Pix) < buf.Width*buf.Height*4 {
		return nil, ErrShortPixelData
	}

	var blocks []Block
	for y := 0; y < buf.Height; y += ch {
		// Doubled comparison so odd cell sizes keep their exact half,
		// retain iff y <= height - ch/2.
		if 2*y > 2*buf.Height-ch {
			continue
		}
		for x := 0; x < buf.Width; x += cw {
			if 2*x > 2*buf.Width-cw {
				continue
			}
			c, err := sampleCell(buf, x, y, cw, ch)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, Block{
				Position: Position{X: x, Y: y},
				Color:    c,
			})
		}
	}

	return blocks, nil
}

func sampleCell(buf *Buffer, x, y, cw, ch int) (chroma.RGB, error) {
	maxX := min(x+cw, buf.Width)
	maxY := min(y+ch, buf.Height)

	var rr, gg, bb uint64
	count := (maxX - x) * (maxY - y)
	if count <= 0 {
		return chroma.RGB{}, fmt.Errorf("block: cell at (%d,%d) contains no pixels", x, y)
	}

	for py := y; py < maxY; py++ {
		i := (py*buf.Width + x) * 4
		for px := x; px < maxX; px++ {
			r, g, b := uint64(buf.Pix[i]), uint64(buf.Pix[i+1]), uint64(buf.Pix[i+2])
			rr += r * r
			gg += g * g
			bb += b * b
			i += 4
		}
	}

	n := float64(count)
	return chroma.New(
		rms(rr, n),
		rms(gg, n),
		rms(bb, n),
	), nil
}

func rms(sumsq uint64, n float64) int {
	return int(math.Round(math.Sqrt(float64(sumsq) / n)))
}
