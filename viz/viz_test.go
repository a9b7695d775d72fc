package viz

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestShowCHWTensor(t *testing.T) {
	chw := tensor.New(
		tensor.WithShape(1, 2, 3),
		tensor.WithBacking([]float32{0, 1, 2, 3, 4, 5}),
	)

	p, err := Show(chw, "")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestShowHWCTensor(t *testing.T) {
	backing := make([]float32, 2*3*3)
	for i := range backing {
		backing[i] = float32(i)
	}
	hwc := tensor.New(tensor.WithShape(2, 3, 3), tensor.WithBacking(backing))

	p, err := Show(hwc, "")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestShowConstantTensor(t *testing.T) {
	// A constant tensor has no value range to scale over; it must still
	// render instead of dividing by zero.
	flat := tensor.New(
		tensor.Of(tensor.Float32),
		tensor.WithShape(1, 4, 4),
	)

	_, err := Show(flat, "")
	require.NoError(t, err)
}

func TestShowImageInput(t *testing.T) {
	p, err := Show(image.NewRGBA(image.Rect(0, 0, 3, 2)), "")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestShowSavesPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	chw := tensor.New(
		tensor.WithShape(3, 2, 2),
		tensor.WithBacking([]float32{
			0, 1, 2, 3,
			4, 5, 6, 7,
			8, 9, 10, 11,
		}),
	)

	_, err := Show(chw, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestShowRejectsUnsupportedShapes(t *testing.T) {
	tooManyChannels := tensor.New(
		tensor.Of(tensor.Float32),
		tensor.WithShape(4, 5, 6),
	)
	_, err := Show(tooManyChannels, "")
	assert.Error(t, err, "neither axis qualifies as a 1-3 channel axis")

	twoAxes := tensor.New(tensor.Of(tensor.Float32), tensor.WithShape(2, 2))
	_, err = Show(twoAxes, "")
	assert.Error(t, err)
}

func TestShowRejectsUnsupportedTypes(t *testing.T) {
	_, err := Show("not an image", "")
	require.Error(t, err)

	_, err = Show(42, "")
	require.Error(t, err)
}
