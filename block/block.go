/*
Package block turns a decoded pixel buffer into a grid of classified
glyph blocks.

The image is partitioned into fixed-size cells, by default 14 by 26
pixels to roughly match the aspect ratio of a monospace glyph. Each cell
yields one Block carrying its top-left pixel coordinate and a single
representative color, computed as the quadratic mean of the pixels in
the cell. Blocks are then classified as solid, shaded or whitespace and
grouped into rows for a renderer to consume.
*/
package block

import "github.com/tmaitland/charart/chroma"

const (
	// CellWidth and CellHeight are the default cell geometry. They were
	// tuned for a default monospace font; callers computing grid
	// dimensions on their own must use the same values as the sampler.
	CellWidth  = 14
	CellHeight = 26
)

// Position is the top-left pixel coordinate of a cell within the source
// image.
type Position struct {
	X, Y int
}

// Block is one sampled grid cell. Blocks never overlap and are not
// mutated after sampling.
type Block struct {
	Position Position
	Color    chroma.RGB
}
