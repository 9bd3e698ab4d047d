package cursoroutline

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	// TipOffset is the top/left margin placed around the cropped cursor so
	// its tip lands on (TipOffset, TipOffset).
	TipOffset = 1
	// CanvasPadding is the total width and height added around the cropped
	// cursor. Whatever is not used by TipOffset goes to the bottom/right.
	CanvasPadding = 4
	// DilationSize is the side of the square window used to grow the border.
	DilationSize = 3
)

var (
	transparent = color.NRGBA{0, 0, 0, 0}
	black       = color.NRGBA{0, 0, 0, 255}
)

// ContentBounds returns the smallest rectangle holding every pixel of img
// whose alpha is non-zero. It is empty when img is fully transparent.
func ContentBounds(img image.Image) image.Rectangle {
	nrgba := toNRGBA(img)
	b := nrgba.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// PadCursor copies img onto a transparent canvas CanvasPadding pixels wider
// and taller, with its top-left corner at (TipOffset, TipOffset).
func PadCursor(img image.Image) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+CanvasPadding, b.Dy()+CanvasPadding, transparent)
	return imaging.Paste(canvas, img, image.Pt(TipOffset, TipOffset))
}

// AlphaMask extracts the alpha channel of img.
func AlphaMask(img image.Image) *image.Alpha {
	nrgba := toNRGBA(img)
	b := nrgba.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mask.Pix[mask.PixOffset(x, y)] = nrgba.Pix[nrgba.PixOffset(x, y)+3]
		}
	}
	return mask
}

// DilateAlpha applies a size×size maximum filter to mask. Pixels near the
// edge only consider neighbors inside the mask.
func DilateAlpha(mask *image.Alpha, size int) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b)
	r := size / 2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var maxA uint8
			for ny := y - r; ny <= y+r; ny++ {
				if ny < b.Min.Y || ny >= b.Max.Y {
					continue
				}
				for nx := x - r; nx <= x+r; nx++ {
					if nx < b.Min.X || nx >= b.Max.X {
						continue
					}
					if a := mask.Pix[mask.PixOffset(nx, ny)]; a > maxA {
						maxA = a
					}
				}
			}
			out.Pix[out.PixOffset(x, y)] = maxA
		}
	}
	return out
}

// BorderLayer returns a black image whose alpha channel is mask.
func BorderLayer(mask *image.Alpha) *image.NRGBA {
	b := mask.Bounds()
	layer := imaging.New(b.Dx(), b.Dy(), black)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			layer.Pix[layer.PixOffset(x, y)+3] = mask.Pix[mask.PixOffset(b.Min.X+x, b.Min.Y+y)]
		}
	}
	return layer
}

// Outline draws a one pixel black border around the visible content of
// padded. The dilated border is composited first and padded is composited
// over it, so the border only shows where it extends past the content.
func Outline(padded image.Image) *image.NRGBA {
	src := toNRGBA(padded)
	border := BorderLayer(DilateAlpha(AlphaMask(src), DilationSize))

	r := src.Bounds()
	canvas := imaging.New(r.Dx(), r.Dy(), transparent)
	draw.Draw(canvas, r, border, image.Point{}, draw.Over)
	draw.Draw(canvas, r, src, image.Point{}, draw.Over)
	return canvas
}

// OutlineCursor crops img to its content, pads it and adds the border. The
// returned cursor's hotspot is the tip at (TipOffset, TipOffset). It fails
// with ErrEmptyImage when img has no visible pixel.
func OutlineCursor(img image.Image) (CursorImage, error) {
	src := toNRGBA(img)
	bounds := ContentBounds(src)
	if bounds.Empty() {
		return CursorImage{}, ErrEmptyImage
	}
	out := Outline(PadCursor(imaging.Crop(src, bounds)))
	return CursorImage{
		Img:    out,
		Width:  out.Bounds().Dx(),
		Height: out.Bounds().Dy(),
		Hotx:   TipOffset,
		Hoty:   TipOffset,
	}, nil
}
