// Package preprocess implements the fixed resize, tensor conversion and
// per-channel normalization pipeline applied to every KITTI raster before it
// enters a dataset.
package preprocess

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Target spatial dimensions shared by both KITTI modalities.
const (
	// TargetHeight is the output height in pixels.
	TargetHeight = 352
	// TargetWidth is the output width in pixels.
	TargetWidth = 1216
)

// PixelScale selects how raw samples are mapped to float32 values before
// normalization.
type PixelScale int

const (
	// Scale8Bit maps 8-bit channel values into [0, 1].
	Scale8Bit PixelScale = iota
	// ScaleRaw16 keeps the raw 16-bit sample value. KITTI depth maps store
	// sensor readings in 16-bit PNGs; rescaling them would destroy the
	// metric content.
	ScaleRaw16
)

// Config describes one preprocessing pipeline: target size, channel count,
// value scaling, and the per-channel normalization constants. Resizing always
// happens before tensor conversion and normalization.
type Config struct {
	// Name of the pipeline, used in error messages.
	Name string
	// Width is the target width in pixels.
	Width int
	// Height is the target height in pixels.
	Height int
	// Channels is the number of output channels (3 for color, 1 for depth
	// maps and masks).
	Channels int
	// Scale selects the raw-sample-to-float mapping.
	Scale PixelScale
	// Mean holds the per-channel normalization means.
	Mean []float32
	// Std holds the per-channel normalization standard deviations.
	Std []float32
	// Filter is the resampling filter used for resizing.
	Filter resize.InterpolationFunction
}

// ColorConfig returns the pipeline applied to RGB camera frames: resize to
// 352x1216, scale channel values to [0, 1], then normalize with the ImageNet
// statistics.
func ColorConfig() Config {
	return Config{
		Name:     "color",
		Width:    TargetWidth,
		Height:   TargetHeight,
		Channels: 3,
		Scale:    Scale8Bit,
		Mean:     []float32{0.485, 0.456, 0.406},
		Std:      []float32{0.229, 0.224, 0.225},
		Filter:   resize.Bilinear,
	}
}

// DepthConfig returns the pipeline applied to sparse depth maps, validity
// masks and ground-truth depth: resize to 352x1216 and keep the raw sample
// values (mean 0, std 1 leaves them unscaled).
func DepthConfig() Config {
	return Config{
		Name:     "depth",
		Width:    TargetWidth,
		Height:   TargetHeight,
		Channels: 1,
		Scale:    ScaleRaw16,
		Mean:     []float32{0},
		Std:      []float32{1},
		Filter:   resize.Bilinear,
	}
}

// Run applies the pipeline to a decoded image.
//
// Arguments:
// - img: The decoded image to preprocess.
//
// Returns:
// - *tensor.Dense: A float32 tensor of shape [Channels, Height, Width].
// - error: An error if the configuration or input is invalid.
func (c Config) Run(img image.Image) (*tensor.Dense, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.Errorf("%s pipeline: image is nil", c.Name)
	}

	resized := resize.Resize(uint(c.Width), uint(c.Height), img, c.Filter)
	data := c.toCHW(resized)
	c.normalize(data)

	return tensor.New(
		tensor.WithShape(c.Channels, c.Height, c.Width),
		tensor.WithBacking(data),
	), nil
}

// Zeros returns an all-zero tensor of the pipeline's output shape. Loaders
// use it to synthesize targets for partitions that ship without ground truth.
func (c Config) Zeros() *tensor.Dense {
	return tensor.New(
		tensor.Of(tensor.Float32),
		tensor.WithShape(c.Channels, c.Height, c.Width),
	)
}

// validate checks the configuration before any pixel work.
func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("%s pipeline: invalid target dimensions %dx%d", c.Name, c.Width, c.Height)
	}
	if c.Channels != 1 && c.Channels != 3 {
		return errors.Errorf("%s pipeline: unsupported channel count %d", c.Name, c.Channels)
	}
	if len(c.Mean) != c.Channels || len(c.Std) != c.Channels {
		return errors.Errorf("%s pipeline: mean/std must have %d entries, got %d/%d",
			c.Name, c.Channels, len(c.Mean), len(c.Std))
	}
	return nil
}

// toCHW flattens the resized image into a float32 slice in channel-major
// (CHW) order. Color.RGBA() yields 16-bit samples, so the 8-bit path shifts
// down before scaling while the raw path keeps the full value.
func (c Config) toCHW(img image.Image) []float32 {
	bounds := img.Bounds()
	plane := c.Height * c.Width
	data := make([]float32, c.Channels*plane)

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := y*c.Width + x

			if c.Channels == 1 {
				if c.Scale == ScaleRaw16 {
					data[idx] = float32(r)
				} else {
					data[idx] = float32(r>>8) / 255.0
				}
				continue
			}

			if c.Scale == ScaleRaw16 {
				data[idx] = float32(r)
				data[plane+idx] = float32(g)
				data[2*plane+idx] = float32(b)
			} else {
				data[idx] = float32(r>>8) / 255.0
				data[plane+idx] = float32(g>>8) / 255.0
				data[2*plane+idx] = float32(b>>8) / 255.0
			}
		}
	}

	return data
}

// normalize applies (v - mean) / std channel-wise, in place.
func (c Config) normalize(data []float32) {
	plane := len(data) / c.Channels
	for ch := 0; ch < c.Channels; ch++ {
		mean, std := c.Mean[ch], c.Std[ch]
		if mean == 0 && std == 1 {
			// Identity normalization, nothing to do.
			continue
		}
		off := ch * plane
		for i := 0; i < plane; i++ {
			data[off+i] = (data[off+i] - mean) / std
		}
	}
}
