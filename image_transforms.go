package cursoroutline

import (
	"context"
	"image"
	"math"

	"github.com/nfnt/resize"
	"go.viam.com/utils"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RotateImageSource rotates images by a set amount of degrees.
type RotateImageSource struct {
	Src         ImageSource
	RotateByDeg float64
}

// Next returns an image rotated counter-clockwise by RotateByDeg degrees. The
// canvas grows to hold the whole rotated image and the exposed area is
// transparent.
func (rms *RotateImageSource) Next(ctx context.Context) (image.Image, func(), error) {
	img, release, err := rms.Src.Next(ctx)
	if err != nil {
		return nil, nil, err
	}
	if release != nil {
		defer release()
	}

	return Rotate(img, rms.RotateByDeg), func() {}, nil
}

// Close closes the underlying source.
func (rms *RotateImageSource) Close(ctx context.Context) error {
	return utils.TryClose(ctx, rms.Src)
}

// ResizeImageSource resizes images to a fixed height, keeping the aspect ratio.
type ResizeImageSource struct {
	Src    ImageSource
	Height int
}

// Next returns an image resized to Height pixels tall.
func (ris *ResizeImageSource) Next(ctx context.Context) (image.Image, func(), error) {
	img, release, err := ris.Src.Next(ctx)
	if err != nil {
		return nil, nil, err
	}
	if release != nil {
		defer release()
	}

	return ResizeToHeight(img, ris.Height), func() {}, nil
}

// Close closes the underlying source.
func (ris *ResizeImageSource) Close(ctx context.Context) error {
	return utils.TryClose(ctx, ris.Src)
}

// Rotate rotates img counter-clockwise by deg degrees about its center using
// Catmull-Rom resampling. The result is sized to contain every rotated corner.
func Rotate(img image.Image, deg float64) *image.NRGBA {
	b := img.Bounds()
	rad := deg * math.Pi / 180
	// rounding keeps right angles exact so the canvas does not grow by a pixel.
	sin := roundTo(math.Sin(rad), 15)
	cos := roundTo(math.Cos(rad), 15)

	// the canvas spans the rotated corners in image coordinates, so odd sizes
	// keep the content on the pixel grid.
	w, h := float64(b.Dx()), float64(b.Dy())
	cx, cy := w/2, h/2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		rx, ry := c[0]-cx, c[1]-cy
		x := cx + cos*rx + sin*ry
		y := cy - sin*rx + cos*ry
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	width := int(math.Ceil(maxX) - math.Floor(minX))
	height := int(math.Ceil(maxY) - math.Floor(minY))

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if b.Empty() {
		return dst
	}

	// source center -> origin, rotate, origin -> destination center.
	scx, scy := float64(b.Min.X)+cx, float64(b.Min.Y)+cy
	dcx, dcy := float64(width)/2, float64(height)/2
	s2d := f64.Aff3{
		cos, sin, dcx - cos*scx - sin*scy,
		-sin, cos, dcy + sin*scx - cos*scy,
	}
	draw.CatmullRom.Transform(dst, s2d, img, b, draw.Src, nil)
	return dst
}

// ResizeToHeight scales img to height pixels tall with Lanczos3. The width is
// round(height * aspect) and never less than one pixel.
func ResizeToHeight(img image.Image, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Empty() || height <= 0 {
		return &image.NRGBA{}
	}
	aspect := float64(b.Dx()) / float64(b.Dy())
	width := int(math.Round(float64(height) * aspect))
	if width < 1 {
		width = 1
	}

	return toNRGBA(resize.Resize(uint(width), uint(height), img, resize.Lanczos3))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
