package block

import (
	"image"
	"image/draw"
)

// Buffer holds decoded image data as a flat row-major RGBA byte
// sequence, four bytes per pixel. It is owned by the image-loading side;
// the sampler only ever reads it.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// FromImage copies m into a Buffer. The source may be any image type;
// it is drawn onto an RGBA canvas so the sampler always sees the same
// layout.
func FromImage(m image.Image) *Buffer {
	b := m.Bounds()

	rgba, ok := m.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Rect, m, b.Min, draw.Src)
	}

	return &Buffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    rgba.Pix,
	}
}
