// Package batch drives imaging.ExtendFile over a single file or a directory tree
// and writes a human-readable report.
package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/image-extender/internal/imaging"
	"github.com/ironsheep/image-extender/internal/logging"
)

// ErrInvalidPath means the root is neither an existing file nor a directory.
var ErrInvalidPath = errors.New("invalid path")

// Summary counts the outcome of one Run.
type Summary struct {
	Found     int
	Succeeded int
	Failed    int
	Skipped   int
}

// Driver processes images one at a time and reports each outcome.
//
// Progress and results go to Out, per-item failures to Err. Neither stream is
// meant to be machine readable.
type Driver struct {
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// Run extends root, or every matching image beneath it, to at least width x height.
//
// A failure on one image is reported and counted; the remaining images are still
// processed. The path is checked first: Run returns ErrInvalidPath when root does
// not exist or is neither a regular file nor a directory. It then returns
// ErrInvalidTarget from imaging.ValidateTarget before anything is written. Any
// other outcome returns a nil error.
func (d *Driver) Run(root string, width, height int) (*Summary, error) {
	info, err := os.Stat(root)
	if err != nil || !(info.Mode().IsRegular() || info.IsDir()) {
		fmt.Fprintf(d.Err, "Invalid path: %s\n", root)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, root, err)
		}
		return nil, fmt.Errorf("%w: %s is not a file or directory", ErrInvalidPath, root)
	}

	if err := imaging.ValidateTarget(width, height); err != nil {
		return nil, err
	}

	if info.IsDir() {
		return d.runDir(root, width, height), nil
	}
	return d.runFile(root, width, height), nil
}

func (d *Driver) runFile(path string, width, height int) *Summary {
	summary := &Summary{Found: 1}
	if d.extend(path, width, height) {
		summary.Succeeded++
	} else {
		summary.Failed++
	}
	return summary
}

func (d *Driver) runDir(root string, width, height int) *Summary {
	logger := logging.OrDiscard(d.Logger)
	walk := imaging.FindImages(root)

	summary := &Summary{Found: len(walk.Paths), Skipped: len(walk.Skipped)}
	for _, s := range walk.Skipped {
		logger.Debug("skipped entry", "path", s.Path, "error", s.Err)
	}
	if summary.Skipped > 0 {
		fmt.Fprintf(d.Out, "Skipped %d unreadable %s.\n", summary.Skipped, plural(summary.Skipped, "entry", "entries"))
	}

	if len(walk.Paths) == 0 {
		fmt.Fprintf(d.Out, "No PNG files found in directory: %s\n", root)
		return summary
	}

	fmt.Fprintf(d.Out, "Found %d PNG %s.\n", summary.Found, plural(summary.Found, "file", "files"))

	for _, path := range walk.Paths {
		if d.extend(path, width, height) {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	fmt.Fprintf(d.Out, "\nDone: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	return summary
}

// extend processes one image and reports the outcome. It returns true on success.
func (d *Driver) extend(path string, width, height int) bool {
	result, err := imaging.ExtendFile(path, width, height)
	if err != nil {
		logging.OrDiscard(d.Logger).Debug("extend failed", "path", path, "error", err)
		fmt.Fprintf(d.Err, "Error: %s - %v\n", path, err)
		return false
	}

	fmt.Fprintf(d.Out, "Processing: %s (%s -> %s)\n", result.InputPath, result.Original, result.Final)
	fmt.Fprintf(d.Out, "Saved: %s\n", result.OutputPath)
	return true
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
