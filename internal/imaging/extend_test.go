package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/data/images/icon.png", "/data/images/ImageExtended/icon.png"},
		{"images/icon.PNG", "images/ImageExtended/icon.PNG"},
		{"icon.png", "ImageExtended/icon.png"},
		{"./icon.png", "ImageExtended/icon.png"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), OutputPath(filepath.FromSlash(tt.input)))
		})
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"positive", 200, 100, false},
		{"one by one", 1, 1, false},
		{"zero width", 0, 100, true},
		{"zero height", 100, 0, true},
		{"both zero", 0, 0, true},
		{"negative", -1, 10, true},
		{"at cap", MaxDimension, MaxDimension, false},
		{"width over cap", MaxDimension + 1, 10, true},
		{"height over cap", 10, 100000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.width, tt.height)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTarget)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExtendFile(t *testing.T) {
	dir := t.TempDir()
	src := createPatternImage(100, 50)
	input := writeTestPNG(t, dir, "banner.png", src)

	result, err := ExtendFile(input, 200, 200)
	require.NoError(t, err)

	assert.Equal(t, input, result.InputPath)
	assert.Equal(t, filepath.Join(dir, OutputDirName, "banner.png"), result.OutputPath)
	assert.Equal(t, Dimensions{100, 50}, result.Original)
	assert.Equal(t, Dimensions{200, 200}, result.Final)
	assert.Equal(t, 50, result.LeftPad)
	assert.Equal(t, 75, result.TopPad)

	out := readTestPNG(t, result.OutputPath)
	require.Equal(t, image.Rect(0, 0, 200, 200), out.Bounds())
	assert.Equal(t, src.NRGBAAt(0, 0), out.NRGBAAt(50, 75))
	assert.Equal(t, src.NRGBAAt(99, 49), out.NRGBAAt(149, 124))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(49, 75))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(150, 124))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(50, 125))

	// Source left untouched.
	assert.Equal(t, src.Pix, readTestPNG(t, input).Pix)
}

func TestExtendFile_RoundTripLossless(t *testing.T) {
	dir := t.TempDir()
	src := createPatternImage(31, 17)
	input := writeTestPNG(t, dir, "pattern.png", src)

	result, err := ExtendFile(input, 40, 40)
	require.NoError(t, err)

	want := Compose(src, 40, 40)
	got := readTestPNG(t, result.OutputPath)
	assert.Equal(t, want.Pix, got.Pix)
}

func TestExtendFile_TargetSmallerKeepsSize(t *testing.T) {
	dir := t.TempDir()
	src := createPatternImage(300, 100)
	input := writeTestPNG(t, dir, "wide.png", src)

	result, err := ExtendFile(input, 200, 50)
	require.NoError(t, err)

	assert.Equal(t, Dimensions{300, 100}, result.Final)
	assert.Zero(t, result.LeftPad)
	assert.Zero(t, result.TopPad)
	assert.Equal(t, src.Pix, readTestPNG(t, result.OutputPath).Pix)
}

func TestExtendFile_OutputIsPNGRegardlessOfExtension(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "actually-png.img", createPatternImage(4, 4))

	result, err := ExtendFile(input, 8, 8)
	require.NoError(t, err)

	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestExtendFile_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "icon.png", createPatternImage(10, 10))

	outPath := OutputPath(input)
	require.NoError(t, os.MkdirAll(filepath.Dir(outPath), 0o755))
	require.NoError(t, os.WriteFile(outPath, []byte("stale"), 0o644))

	result, err := ExtendFile(input, 16, 12)
	require.NoError(t, err)

	out := readTestPNG(t, result.OutputPath)
	assert.Equal(t, image.Rect(0, 0, 16, 12), out.Bounds())
}

func TestExtendFile_NoLeftoverTempFiles(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "icon.png", createPatternImage(10, 10))

	_, err := ExtendFile(input, 20, 20)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, OutputDirName))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "icon.png", entries[0].Name())
}

func TestExtendFile_DecodeError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(input, []byte("not an image"), 0o644))

	_, err := ExtendFile(input, 10, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	_, statErr := os.Stat(filepath.Join(dir, OutputDirName))
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created on decode failure")
}

func TestExtendFile_MissingFile(t *testing.T) {
	_, err := ExtendFile(filepath.Join(t.TempDir(), "missing.png"), 10, 10)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestExtendFile_OutputDirBlocked(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, "icon.png", createPatternImage(4, 4))

	// A regular file where the output directory should go.
	require.NoError(t, os.WriteFile(filepath.Join(dir, OutputDirName), nil, 0o644))

	_, err := ExtendFile(input, 8, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestExtendResult_Summary(t *testing.T) {
	r := &ExtendResult{
		InputPath:  "/in/a.png",
		OutputPath: "/in/ImageExtended/a.png",
		Original:   Dimensions{100, 50},
		Final:      Dimensions{200, 200},
	}

	summary := r.Summary()

	lines := strings.Split(summary, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Input: /in/a.png", lines[1])
	assert.Equal(t, "Output: /in/ImageExtended/a.png", lines[2])
	assert.Equal(t, "Original size: 100x50", lines[3])
	assert.Equal(t, "Final size: 200x200", lines[4])
}
