package cursoroutline

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// CursorImage is a cursor bitmap together with its hotspot, the pixel that
// marks the click position.
type CursorImage struct {
	Img    image.Image
	Width  int
	Height int
	Hotx   int
	Hoty   int
}

// Hotspot returns the click position of the cursor.
func (c CursorImage) Hotspot() image.Point {
	return image.Pt(c.Hotx, c.Hoty)
}

// Scale returns the cursor resized by factor with its hotspot moved along.
// A non-positive factor or a factor of one returns c as is.
func (c CursorImage) Scale(factor float32) CursorImage {
	if factor <= 0 || factor == 1 {
		return c
	}
	scaled := func(v int) int {
		return int(math.Round(float64(factor) * float64(v)))
	}
	width, height := max(scaled(c.Width), 1), max(scaled(c.Height), 1)
	return CursorImage{
		Img:    toNRGBA(resize.Resize(uint(width), uint(height), c.Img, resize.Lanczos3)),
		Width:  width,
		Height: height,
		Hotx:   scaled(c.Hotx),
		Hoty:   scaled(c.Hoty),
	}
}
