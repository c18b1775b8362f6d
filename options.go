package charart

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmaitland/charart/block"
)

// Options is the full converter configuration. Construct it with
// DefaultOptions or LoadOptions so every field carries a value; nothing
// in the pipeline patches options after the fact.
type Options struct {
	// IgnoreWhitespaces renders pure white blocks as blanks.
	IgnoreWhitespaces bool `yaml:"ignoreWhitespaces"`
	// Shading renders dark blocks with the shaded glyph.
	Shading bool `yaml:"shading"`
	// LegacyStyle forces the shaded glyph for every non-whitespace
	// block.
	LegacyStyle bool `yaml:"legacyStyle"`
	// Threshold is the inclusive brightness bound for Shading.
	Threshold int `yaml:"threshold"`
	// CellWidth and CellHeight set the sampling grid geometry.
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
}

// DefaultOptions returns the documented defaults: all modes off,
// threshold 125, 14x26 cells.
func DefaultOptions() Options {
	return Options{
		Threshold:  block.DefaultThreshold,
		CellWidth:  block.CellWidth,
		CellHeight: block.CellHeight,
	}
}

// LoadOptions reads a YAML options file over the defaults. Missing keys
// keep their default values and unrecognized keys are ignored.
func LoadOptions(file string) (Options, error) {
	opts := DefaultOptions()

	b, err := os.ReadFile(file)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return opts, err
	}

	return opts, nil
}

func (o Options) config() block.Config {
	return block.Config{
		IgnoreWhitespaces: o.IgnoreWhitespaces,
		Shading:           o.Shading,
		LegacyStyle:       o.LegacyStyle,
		Threshold:         o.Threshold,
	}
}
