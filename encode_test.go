package cursoroutline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"go.viam.com/test"
)

func TestSaveCursor(t *testing.T) {
	img := imaging.New(6, 5, color.NRGBA{})
	img.SetNRGBA(1, 1, color.NRGBA{12, 34, 56, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 0, 128})

	t.Run("writes rgba png", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cursor-v4.png")
		test.That(t, SaveCursor(path, img), test.ShouldBeNil)

		entries, err := os.ReadDir(dir)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, entries, test.ShouldHaveLength, 1)

		f, err := os.Open(path)
		test.That(t, err, test.ShouldBeNil)
		defer f.Close()
		decoded, err := png.Decode(f)
		test.That(t, err, test.ShouldBeNil)
		nrgba, ok := decoded.(*image.NRGBA)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, nrgba.Pix, test.ShouldResemble, img.Pix)
	})

	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cursor-v4.png")
		test.That(t, os.WriteFile(path, []byte("old"), 0o600), test.ShouldBeNil)
		test.That(t, SaveCursor(path, img), test.ShouldBeNil)

		decoded, err := imaging.Open(path)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, decoded.Bounds(), test.ShouldResemble, img.Bounds())
	})

	t.Run("missing directory", func(t *testing.T) {
		dir := t.TempDir()
		err := SaveCursor(filepath.Join(dir, "nope", "cursor.png"), img)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "failed to create temporary output")
	})

	t.Run("failed rename leaves nothing behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cursor.png")
		test.That(t, os.Mkdir(path, 0o700), test.ShouldBeNil)
		test.That(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o600), test.ShouldBeNil)

		err := SaveCursor(path, img)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "failed to move output")

		entries, err := os.ReadDir(dir)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, entries, test.ShouldHaveLength, 1)
		test.That(t, entries[0].Name(), test.ShouldEqual, "cursor.png")
	})
}
