package cursoroutline

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// register webp decoding for imaging.Open.
	_ "golang.org/x/image/webp"
)

// An ImageSource is responsible for producing images when requested. The
// returned release function must be called once the image is no longer used.
type ImageSource interface {
	Next(ctx context.Context) (image.Image, func(), error)
	Close(ctx context.Context) error
}

// An ImageSourceFunc is a helper to turn a function into an ImageSource.
type ImageSourceFunc func(ctx context.Context) (image.Image, func(), error)

// Next calls the underlying function to get an image.
func (isf ImageSourceFunc) Next(ctx context.Context) (image.Image, func(), error) {
	return isf(ctx)
}

// Close does nothing.
func (isf ImageSourceFunc) Close(ctx context.Context) error {
	return nil
}

// FileImageSource decodes the image stored at Path. Every image it returns is
// an *image.NRGBA regardless of the encoded color model.
type FileImageSource struct {
	Path string
}

// Next decodes the file and normalizes it to four channels.
func (fis *FileImageSource) Next(ctx context.Context) (image.Image, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	img, err := imaging.Open(fis.Path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load %q", fis.Path)
	}
	return toNRGBA(img), func() {}, nil
}

// Close does nothing; the file is closed as soon as it is decoded.
func (fis *FileImageSource) Close(ctx context.Context) error {
	return nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}
	return imaging.Clone(img)
}
