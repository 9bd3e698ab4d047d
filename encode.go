package cursoroutline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// SaveCursor writes img to path as a PNG. The image is encoded into a
// temporary file next to path and renamed into place, so path is either left
// untouched or replaced by a complete file.
func SaveCursor(path string, img image.Image) (err error) {
	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	//nolint:gosec
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to create temporary output")
	}
	defer func() {
		if err != nil {
			err = multierr.Combine(err, os.Remove(tmpPath))
		}
	}()

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return multierr.Combine(errors.Wrap(err, "failed to encode png"), f.Close())
	}
	if err := f.Sync(); err != nil {
		return multierr.Combine(errors.Wrap(err, "failed to sync output"), f.Close())
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close output")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to move output to %q", path)
	}
	return nil
}
