package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/google/renameio/v2"
)

// outputPerm is applied to every written image, whether new or replaced.
const outputPerm = 0o644

// encodePNG is the only output encoder. The format never follows the file extension.
var encodePNG imgio.Encoder = imgio.PNGEncoder()

// WritePNG encodes img as PNG and atomically replaces the file at path.
//
// The encoded bytes go to a pending file in the same directory, which is renamed
// over path only after the encoder and close both succeed. A failed write leaves
// any previous file at path untouched and removes the pending file. The parent
// directory must already exist.
//
// Failures wrap ErrWrite.
func WritePNG(path string, img image.Image) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(outputPerm))
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrWrite, path, err)
	}
	defer pending.Cleanup()

	if err := encodePNG(pending, img); err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", ErrWrite, path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %w", ErrWrite, path, err)
	}

	return nil
}
