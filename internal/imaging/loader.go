package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Error kinds reported by this package. Callers match them with errors.Is.
var (
	// ErrDecode means the source could not be opened or parsed as an image.
	ErrDecode = errors.New("decode failed")

	// ErrWrite means the output directory or output file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrInvalidTarget means a requested target width or height is not positive.
	ErrInvalidTarget = errors.New("invalid target size")
)

// Load reads and decodes the image at path into a non-premultiplied RGBA buffer.
//
// Any format registered with the image package can be read. Sources without an
// alpha channel come back fully opaque (alpha 255). The file is decoded on every
// call; nothing is cached between calls.
//
// # Errors
//
// All failures wrap ErrDecode:
//   - the file does not exist or cannot be opened
//   - the contents are not a decodable image
//   - the decoded image has zero width or height
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image: %w", ErrDecode, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", ErrDecode, err)
	}

	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image %s has no pixels", ErrDecode, path)
	}

	return imaging.Clone(img), nil
}
