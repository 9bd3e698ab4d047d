// Package cursoroutline turns a cursor picture into a small tilted cursor
// with a one pixel black outline.
package cursoroutline

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	// DefaultInputPath is where the source cursor is read from.
	DefaultInputPath = "public/cursor.png"
	// DefaultOutputPath is where the processed cursor is written.
	DefaultOutputPath = "public/cursor-v4.png"
	// RotationDegrees is the counter-clockwise tilt applied to the cursor.
	RotationDegrees = 10
	// TargetHeight is the height of the cursor after resizing, before cropping.
	TargetHeight = 32
)

// ErrEmptyImage is returned when the resized cursor has no visible pixel.
var ErrEmptyImage = errors.New("image is empty")

// A Processor rotates, resizes, crops and outlines a cursor image.
type Processor struct {
	RotateByDeg float64
	Height      int
	logger      golog.Logger
}

// NewProcessor returns a Processor using the fixed cursor settings.
func NewProcessor(logger golog.Logger) *Processor {
	return &Processor{
		RotateByDeg: RotationDegrees,
		Height:      TargetHeight,
		logger:      logger,
	}
}

// Process reads the cursor at inputPath and writes the outlined cursor to
// outputPath. Nothing is written unless every step succeeds; a fully
// transparent result fails with ErrEmptyImage.
func (p *Processor) Process(ctx context.Context, inputPath, outputPath string) (cursor CursorImage, err error) {
	var src ImageSource = &FileImageSource{Path: inputPath}
	src = &RotateImageSource{Src: src, RotateByDeg: p.RotateByDeg}
	src = &ResizeImageSource{Src: src, Height: p.Height}
	defer func() {
		err = multierr.Combine(err, src.Close(ctx))
	}()

	img, release, err := src.Next(ctx)
	if err != nil {
		return CursorImage{}, err
	}
	if release != nil {
		defer release()
	}
	p.logger.Debugw("resized cursor", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	cursor, err = OutlineCursor(img)
	if err != nil {
		return CursorImage{}, err
	}
	if err := ctx.Err(); err != nil {
		return CursorImage{}, err
	}
	if err := SaveCursor(outputPath, cursor.Img); err != nil {
		return CursorImage{}, err
	}

	p.logger.Infow("processed cursor",
		"input", inputPath,
		"output", outputPath,
		"width", cursor.Width,
		"height", cursor.Height,
		"hotspot", cursor.Hotspot(),
	)
	return cursor, nil
}
