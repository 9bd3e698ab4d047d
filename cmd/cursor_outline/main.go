// Package main rewrites public/cursor.png into the outlined public/cursor-v4.png.
package main

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/edaniels/cursoroutline"
)

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

var logger = golog.NewLogger("cursor_outline")

// Arguments for the command.
type Arguments struct {
	Debug bool `flag:"debug,usage=enable debug logging"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.Debug {
		logger = golog.NewDebugLogger("cursor_outline")
	}

	return runProcess(ctx, cursoroutline.DefaultInputPath, cursoroutline.DefaultOutputPath, logger)
}

// runProcess converts a single cursor. An empty cursor is reported and
// treated as success; every other failure is returned so the process exits
// non-zero.
func runProcess(ctx context.Context, inputPath, outputPath string, logger golog.Logger) error {
	proc := cursoroutline.NewProcessor(logger)
	if _, err := proc.Process(ctx, inputPath, outputPath); err != nil {
		if errors.Is(err, cursoroutline.ErrEmptyImage) {
			logger.Infow("image is empty, nothing written", "input", inputPath)
			return nil
		}
		return errors.Wrap(err, "error processing cursor")
	}
	return nil
}
