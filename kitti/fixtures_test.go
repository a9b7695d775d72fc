package kitti

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

// writePNG encodes img to path, creating parent directories as needed.
func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

// colorFrame builds a small uniform RGB frame; r distinguishes samples.
func colorFrame(r uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: r, G: 80, B: 160, A: 255})
		}
	}
	return img
}

// sparseFrame builds a small uniform 16-bit depth raster.
func sparseFrame(v uint16) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	return img
}

// firstValue returns the first element of a float32 tensor.
func firstValue(t *testing.T, d *tensor.Dense) float32 {
	t.Helper()
	data, ok := d.Data().([]float32)
	require.True(t, ok, "expected a float32 tensor")
	require.NotEmpty(t, data)
	return data[0]
}

// requireAllZero fails if any element of the tensor is non-zero.
func requireAllZero(t *testing.T, d *tensor.Dense) {
	t.Helper()
	for i, v := range d.Data().([]float32) {
		if v != 0 {
			t.Fatalf("expected all-zero tensor, found %v at %d", v, i)
		}
	}
}
