package source

import (
	"errors"
	"image"
	"runtime"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"
)

// renderDPI is the resolution pages are rasterized at. High enough that
// a 14x26 cell covers several glyphs of body text.
const renderDPI = 144

var errPageRange = errors.New("source: page index out of range")

// PDF rasterizes pages of a PDF document.
type PDF struct {
	doc  *fitz.Document
	path string
}

// OpenPDF opens the document at path.
func OpenPDF(path string) (*PDF, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &PDF{doc: doc, path: path}, nil
}

func (p *PDF) PageCount() int {
	return p.doc.NumPage()
}

// RenderPage rasterizes the zero-based page index. Each call opens its
// own fitz document so concurrent renders do not share handles.
func (p *PDF) RenderPage(index int) (image.Image, error) {
	if index < 0 || index >= p.doc.NumPage() {
		return nil, errPageRange
	}

	doc, err := fitz.New(p.path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return doc.ImageDPI(index, renderDPI)
}

// RenderAll rasterizes every page, fanning the work out across the
// available CPUs. Pages are returned in document order.
func (p *PDF) RenderAll() ([]image.Image, error) {
	pages := make([]image.Image, p.doc.NumPage())

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i := range pages {
		g.Go(func() error {
			m, err := p.RenderPage(i)
			if err != nil {
				return err
			}
			pages[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

func (p *PDF) Close() error {
	return p.doc.Close()
}
