/*
Package render consumes classified rows and emits them on a presentation
surface: ANSI text, a paletted PNG mosaic, or an interactive terminal
screen. Nothing here feeds back into the sampling pipeline.
*/
package render

import "github.com/tmaitland/charart/block"

// glyphs maps each render class to the rune drawn for it.
var glyphs = map[block.Class]rune{
	block.Solid:      '█',
	block.Shaded:     '▒',
	block.Whitespace: ' ',
}
