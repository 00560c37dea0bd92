package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Dimensions is the pixel size of an image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String formats the dimensions as "WxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// transparent is the fill used for every padding pixel.
var transparent = color.NRGBA{0, 0, 0, 0}

// Placement computes where a source of srcW x srcH lands on the extended canvas.
//
// The canvas is never smaller than the source: each final dimension is the larger
// of the source and the target. The source is centered with floor division, so when
// the total padding on an axis is odd the extra pixel ends up on the right or bottom.
//
// Returns:
//   - final: The canvas dimensions.
//   - offset: The top-left corner of the source on the canvas (left pad, top pad).
func Placement(srcW, srcH, targetW, targetH int) (final Dimensions, offset image.Point) {
	final = Dimensions{
		Width:  max(srcW, targetW),
		Height: max(srcH, targetH),
	}
	offset = image.Pt((final.Width-srcW)/2, (final.Height-srcH)/2)
	return final, offset
}

// Compose places src centered on a fully transparent canvas of at least
// targetW x targetH pixels.
//
// Source pixels are copied verbatim, alpha included; nothing is blended or
// resampled. Targets smaller than the source (including zero) leave that axis at
// the source size, so Compose never fails and never shrinks the image.
//
// The returned canvas always has its origin at (0,0), regardless of src.Bounds().Min.
//
// imaging.Paste clones the blank canvas before copying, so peak memory is two
// canvases. Rows are copied on imaging's worker goroutines; Compose still returns
// only when the copy is complete and shares nothing with other calls.
func Compose(src image.Image, targetW, targetH int) *image.NRGBA {
	size := src.Bounds().Size()
	final, offset := Placement(size.X, size.Y, targetW, targetH)

	canvas := imaging.New(final.Width, final.Height, transparent)
	return imaging.Paste(canvas, src, offset)
}
