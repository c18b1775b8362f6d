package charart

import (
	"image"

	"github.com/tmaitland/charart/block"
	"github.com/tmaitland/charart/render"
	"github.com/tmaitland/charart/source"
)

// Convert runs the core pipeline over an already decoded image: sample
// the pixel grid, classify each block and group the result into rows.
func Convert(m image.Image, opts Options) ([][]block.ClassifiedBlock, error) {
	blocks, err := block.Sample(block.FromImage(m), opts.CellWidth, opts.CellHeight)
	if err != nil {
		return nil, err
	}

	return block.Rows(block.ClassifyAll(blocks, opts.config()))
}

// ConvertFile converts the first page of the named file to ANSI text.
// When a cache is attached, the file's CRC is looked up first and the
// rendered art is stored after a miss.
func (c *CharArt) ConvertFile(file string, opts Options) (string, error) {
	crc, err := crcFile(file)
	if err != nil {
		return "", err
	}

	if c.db != nil {
		art, err := c.db.FindArtByCRC(crc)
		if err != nil {
			return "", err
		}
		if art != "" {
			c.logger.Printf("Cache hit for \"%s\", with CRC \"%s\"\n", file, crc)
			return art, nil
		}
	}

	m, err := source.Load(file)
	if err != nil {
		return "", err
	}

	rows, err := Convert(m, opts)
	if err != nil {
		return "", err
	}

	art := render.ANSI(rows)

	if c.db != nil {
		if err := c.db.SetArt(crc, art); err != nil {
			return "", err
		}
	}

	return art, nil
}
