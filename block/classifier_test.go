package block

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmaitland/charart/chroma"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.IgnoreWhitespaces)
	assert.False(t, cfg.Shading)
	assert.False(t, cfg.LegacyStyle)
	assert.Equal(t, 125, cfg.Threshold)
}

func TestClassify(t *testing.T) {
	white := Block{Color: chroma.White}
	red := Block{Color: chroma.RGB{R: 255}}           // brightness 76
	gray125 := Block{Color: chroma.RGB{R: 125, G: 125, B: 125}} // brightness 125
	gray126 := Block{Color: chroma.RGB{R: 126, G: 126, B: 126}} // brightness 126

	tests := []struct {
		name     string
		b        Block
		cfg      Config
		expected Class
	}{
		{"everything off is solid", red, DefaultConfig(), Solid},
		{"white without detection is solid", white, DefaultConfig(), Solid},
		{"dark block with shading", red, Config{Shading: true, Threshold: 125}, Shaded},
		{"threshold is inclusive", gray125, Config{Shading: true, Threshold: 125}, Shaded},
		{"just above threshold is solid", gray126, Config{Shading: true, Threshold: 125}, Solid},
		{"legacy forces shaded", gray126, Config{LegacyStyle: true, Threshold: 125}, Shaded},
		{"legacy overrides disabled shading", white, Config{LegacyStyle: true, Threshold: 125}, Shaded},
		{"whitespace beats legacy", white, Config{IgnoreWhitespaces: true, LegacyStyle: true, Threshold: 125}, Whitespace},
		{"whitespace beats everything", white, Config{IgnoreWhitespaces: true, Shading: true, LegacyStyle: true, Threshold: 255}, Whitespace},
		{"near-white is not whitespace", Block{Color: chroma.RGB{R: 255, G: 255, B: 254}}, Config{IgnoreWhitespaces: true, Threshold: 125}, Solid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := Classify(tt.b, tt.cfg)
			assert.Equal(t, tt.expected, cb.Class)
			assert.Equal(t, tt.b, cb.Block)
		})
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	blocks := []Block{
		{Position: Position{0, 0}, Color: chroma.White},
		{Position: Position{14, 0}, Color: chroma.RGB{R: 255}},
	}

	out := ClassifyAll(blocks, Config{IgnoreWhitespaces: true, Shading: true, Threshold: 125})
	assert.Len(t, out, 2)
	assert.Equal(t, Whitespace, out[0].Class)
	assert.Equal(t, Shaded, out[1].Class)
	assert.Equal(t, blocks[0].Position, out[0].Position)
	assert.Equal(t, blocks[1].Position, out[1].Position)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "solid", Solid.String())
	assert.Equal(t, "shaded", Shaded.String())
	assert.Equal(t, "whitespace", Whitespace.String())
	assert.Equal(t, "unknown", Class(42).String())
}
