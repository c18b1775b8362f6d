package block

import "github.com/tmaitland/charart/chroma"

// Class is the rendering treatment assigned to a block.
type Class int

const (
	// Solid blocks render as a full-fill glyph.
	Solid Class = iota
	// Shaded blocks render as a partial-fill glyph.
	Shaded
	// Whitespace blocks render as a blank placeholder.
	Whitespace
)

var classNames = map[Class]string{
	Solid:      "solid",
	Shaded:     "shaded",
	Whitespace: "whitespace",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "unknown"
}

// DefaultThreshold is the brightness at or below which a block is
// shaded when shading is enabled. Empirically tuned, like the cell
// geometry.
const DefaultThreshold = 125

// Config controls classification.
type Config struct {
	// IgnoreWhitespaces classifies pure white blocks as Whitespace.
	IgnoreWhitespaces bool
	// Shading classifies blocks at or below Threshold brightness as
	// Shaded.
	Shading bool
	// LegacyStyle forces every non-whitespace block to Shaded,
	// regardless of brightness.
	LegacyStyle bool
	// Threshold is the inclusive brightness bound used by Shading.
	Threshold int
}

// DefaultConfig returns a fully populated configuration: all modes off,
// threshold at DefaultThreshold.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// ClassifiedBlock is a Block tagged with its render class.
type ClassifiedBlock struct {
	Block
	Class Class
}

// Classify tags b with a render class. The rules apply in order, first
// match wins: whitespace detection runs before shading so a pure white
// block is never rendered as a dark shaded glyph, even in legacy style.
func Classify(b Block, cfg Config) ClassifiedBlock {
	cb := ClassifiedBlock{Block: b, Class: Solid}

	switch {
	case cfg.IgnoreWhitespaces && b.Color == chroma.White:
		cb.Class = Whitespace
	case cfg.Shading && chroma.Brightness(b.Color) <= cfg.Threshold:
		cb.Class = Shaded
	case cfg.LegacyStyle:
		cb.Class = Shaded
	}

	return cb
}

// ClassifyAll classifies every block in order.
func ClassifyAll(blocks []Block, cfg Config) []ClassifiedBlock {
	out := make([]ClassifiedBlock, len(blocks))
	for i, b := range blocks {
		out[i] = Classify(b, cfg)
	}
	return out
}
