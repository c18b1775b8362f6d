/*
Package chroma implements the small amount of color arithmetic the
converter needs: an RGB value type, hex parsing and formatting, linear
interpolation and a perceptual brightness estimate.
*/
package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a color with 8-bit channels. It is a plain value with no
// identity; two colors are equal when their channels are equal.
type RGB struct {
	R, G, B uint8
}

// White is the only color the classifier treats as whitespace.
var White = RGB{0xff, 0xff, 0xff}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// New returns the RGB color for the given channel values. Out-of-range
// values are clamped to [0, 255] rather than wrapped, so New(-1, 0, 300)
// is black with a saturated blue channel.
func New(r, g, b int) RGB {
	return RGB{clamp(r), clamp(g), clamp(b)}
}

// Lerp linearly interpolates between a and b. u is not constrained;
// callers wanting a blend must keep it within [0, 1].
func Lerp(a, b, u float64) float64 {
	return (1-u)*a + u*b
}

// ParseHex parses a six digit hex color such as "1fe0c4" or "#1FE0C4".
// The leading "#" is optional and parsing is case-insensitive. It
// reports false for any other length or for non-hex characters; callers
// must check the result rather than assume success.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(v >> 16), uint8(v >> 8 & 0xff), uint8(v & 0xff)}, true
}

// Hex formats c as a lowercase "#rrggbb" string. It is the inverse of
// ParseHex for every well-formed input.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Brightness returns the perceived brightness of c in [0, 255] using the
// ITU-R BT.601 luma weights, (299r + 587g + 114b) / 1000, rounded to the
// nearest integer. The weighted sum tracks human perception much closer
// than an unweighted channel mean.
func Brightness(c RGB) int {
	return int(math.Round(float64(299*int(c.R)+587*int(c.G)+114*int(c.B)) / 1000))
}
