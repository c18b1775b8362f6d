package source

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageSource is a single decoded raster image.
type imageSource struct {
	m image.Image
}

func openImage(file string) (*imageSource, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return &imageSource{m: m}, nil
}

func (s *imageSource) PageCount() int {
	return 1
}

func (s *imageSource) RenderPage(index int) (image.Image, error) {
	if index != 0 {
		return nil, errPageRange
	}
	return s.m, nil
}

func (s *imageSource) Close() error {
	return nil
}
