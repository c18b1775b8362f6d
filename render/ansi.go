package render

import (
	"fmt"
	"strings"

	"github.com/tmaitland/charart/block"
	"github.com/tmaitland/charart/chroma"
)

// Rough per-glyph reserve covering the UTF-8 rune plus an occasional
// color escape sequence.
const bytesPerGlyphReserve = 8

// ANSI renders rows as truecolor ANSI text, one line per row, ending
// with a reset. Consecutive blocks sharing a color reuse the previous
// escape sequence.
func ANSI(rows [][]block.ClassifiedBlock) string {
	var b strings.Builder

	var n int
	for _, row := range rows {
		n += len(row)*bytesPerGlyphReserve + 1
	}
	b.Grow(n)

	b.WriteString("\x1b[0m")

	prev := chroma.RGB{}
	first := true
	for _, row := range rows {
		for _, cb := range row {
			if cb.Class != block.Whitespace && (first || cb.Color != prev) {
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", cb.Color.R, cb.Color.G, cb.Color.B)
				prev, first = cb.Color, false
			}
			b.WriteRune(glyphs[cb.Class])
		}
		b.WriteRune('\n')
	}

	b.WriteString("\x1b[0m")

	return b.String()
}
