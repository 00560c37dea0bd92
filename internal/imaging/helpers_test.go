package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createPatternImage creates an image with a different translucent color in each
// quadrant, so relocated pixels can be told apart.
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			if x < width/2 && y < height/2 {
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.NRGBA{0, 255, 0, 200} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.NRGBA{0, 0, 255, 100} // Blue bottom-left
			} else {
				c = color.NRGBA{255, 255, 255, 1} // Nearly transparent white bottom-right
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writeTestPNG encodes img into dir/name and returns the path.
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

// readTestPNG decodes the PNG at path into an NRGBA buffer.
func readTestPNG(t *testing.T, path string) *image.NRGBA {
	t.Helper()

	img, err := Load(path)
	require.NoError(t, err)
	return img
}
