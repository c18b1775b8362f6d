/*
Package source resolves input files to decoded images for the sampling
pipeline. Raster formats are decoded directly; PDF files are rasterized
one page at a time.

Decoding happens entirely up front: the pipeline only ever sees a fully
decoded, immutable image, never a partial stream.
*/
package source

import (
	"image"
	"path/filepath"
	"strings"
)

// A Source yields one or more pages as decoded images. Raster images
// have exactly one page.
type Source interface {
	PageCount() int
	RenderPage(index int) (image.Image, error)
	Close() error
}

// Open returns a Source for the named file, chosen by extension.
func Open(file string) (Source, error) {
	if strings.EqualFold(filepath.Ext(file), ".pdf") {
		return OpenPDF(file)
	}
	return openImage(file)
}

// Load is a convenience wrapper returning the first page of the named
// file.
func Load(file string) (image.Image, error) {
	src, err := Open(file)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return src.RenderPage(0)
}
