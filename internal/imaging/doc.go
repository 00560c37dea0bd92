// Package imaging extends images onto larger transparent canvases.
//
// The package holds the one shared implementation used by both the batch CLI and
// the MCP server: the canvas compositor, the file adapter that loads, composes and
// writes an image, and the directory walker that finds candidate files.
//
// # Canvas Rules
//
// For a source of W x H and a target of TW x TH:
//   - The canvas is max(W,TW) x max(H,TH); it never shrinks below the source.
//   - The source sits at (floor((CW-W)/2), floor((CH-H)/2)), so odd padding puts
//     the extra pixel on the right or bottom.
//   - Every pixel outside the source rectangle is (0,0,0,0).
//   - Source pixels are copied unchanged, alpha included.
//
// All pixel buffers are *image.NRGBA with their origin at (0,0).
//
// # Output Layout
//
// The result for dir/name.png is written as PNG to dir/ImageExtended/name.png,
// replacing any earlier output. Writes go through a temporary file and a rename,
// so an interrupted run never leaves a truncated image at the output path.
//
// # Error Handling
//
// Errors wrap one of the sentinel kinds so callers can classify them with errors.Is:
//   - ErrDecode: the source could not be opened or decoded
//   - ErrWrite: the output directory or file could not be written
//   - ErrInvalidTarget: ValidateTarget rejected the requested size
//
// # Thread Safety
//
// Nothing in this package holds state between calls. Two processes writing into
// the same output directory can still race on the same file name.
package imaging
