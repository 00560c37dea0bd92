package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputDirName is the directory, created next to each input file, that receives
// the extended images.
const OutputDirName = "ImageExtended"

// ExtendResult describes one completed extension. It is returned to the caller
// and not recorded anywhere else.
type ExtendResult struct {
	// InputPath is the source file as given by the caller.
	InputPath string `json:"input_path"`

	// OutputPath is where the extended PNG was written.
	OutputPath string `json:"output_path"`

	// Original is the size of the decoded source.
	Original Dimensions `json:"original_size"`

	// Final is the size of the written canvas.
	Final Dimensions `json:"final_size"`

	// LeftPad and TopPad locate the source on the canvas.
	LeftPad int `json:"left_pad"`
	TopPad  int `json:"top_pad"`
}

// Summary renders the result as the human-readable text reported to tool callers.
func (r *ExtendResult) Summary() string {
	var b strings.Builder
	b.WriteString("Image extended successfully.\n")
	fmt.Fprintf(&b, "Input: %s\n", r.InputPath)
	fmt.Fprintf(&b, "Output: %s\n", r.OutputPath)
	fmt.Fprintf(&b, "Original size: %s\n", r.Original)
	fmt.Fprintf(&b, "Final size: %s", r.Final)
	return b.String()
}

// MaxDimension caps each side of a requested canvas. A square canvas at the cap
// needs 1 GiB of NRGBA pixels, which keeps a single request from exhausting the
// memory of a long-running server.
const MaxDimension = 16384

// ValidateTarget is the single validation policy for requested canvas sizes.
// Both front ends call it before any file is touched; Compose itself accepts any
// target and floors it to the source size.
func ValidateTarget(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidTarget, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: width and height must not exceed %d, got %dx%d", ErrInvalidTarget, MaxDimension, width, height)
	}
	return nil
}

// OutputPath returns where ExtendFile writes the result for input: a file with the
// same base name inside OutputDirName next to the input. An input without a
// directory component resolves relative to ".".
func OutputPath(input string) string {
	return filepath.Join(filepath.Dir(input), OutputDirName, filepath.Base(input))
}

// ExtendFile pads the image at path with transparent pixels until it is at least
// width x height, centering the original content, and writes the result as PNG
// to OutputPath(path).
//
// The output directory is created on demand. An existing output with the same
// name is replaced. The target is not validated here; see ValidateTarget.
//
// # Errors
//
//   - ErrDecode: the source cannot be opened or decoded. Nothing is created.
//   - ErrWrite: the output directory or file cannot be written.
func ExtendFile(path string, width, height int) (*ExtendResult, error) {
	src, err := Load(path)
	if err != nil {
		return nil, err
	}

	canvas := Compose(src, width, height)

	outPath := OutputPath(path)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create output directory: %w", ErrWrite, err)
	}

	if err := WritePNG(outPath, canvas); err != nil {
		return nil, err
	}

	size := src.Bounds().Size()
	final, offset := Placement(size.X, size.Y, width, height)

	return &ExtendResult{
		InputPath:  path,
		OutputPath: outPath,
		Original:   Dimensions{Width: size.X, Height: size.Y},
		Final:      final,
		LeftPad:    offset.X,
		TopPad:     offset.Y,
	}, nil
}
