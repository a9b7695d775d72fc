// Package viz renders dataset tensors for visual inspection.
package viz

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gorgonia.org/tensor"
)

// Show renders a tensor or decoded image for display. Tensors must be
// float32 with three axes, either CHW with one to three channels (the leading
// channel axis is moved to the back before drawing) or already HWC. Channel
// values are autoscaled over the tensor's own range, which undoes the
// pipeline normalization well enough for inspection and keeps raw depth
// values visible. When savePath is non-empty the plot is also written there;
// the plot handle is returned either way.
func Show(v interface{}, savePath string) (*plot.Plot, error) {
	var img image.Image
	switch t := v.(type) {
	case image.Image:
		img = t
	case *tensor.Dense:
		var err error
		img, err = toImage(t)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported value of type %T: want *tensor.Dense or image.Image", v)
	}

	p := plot.New()
	p.HideAxes()
	b := img.Bounds()
	p.Add(plotter.NewImage(img, 0, 0, float64(b.Dx()), float64(b.Dy())))

	if savePath != "" {
		width := 8 * vg.Inch
		height := width * vg.Length(b.Dy()) / vg.Length(b.Dx())
		if err := p.Save(width, height, savePath); err != nil {
			return p, errors.Wrapf(err, "failed to save plot to %s", savePath)
		}
	}

	return p, nil
}

// toImage lowers a float32 tensor onto an 8-bit raster in HWC layout.
func toImage(t *tensor.Dense) (image.Image, error) {
	data, ok := t.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("unsupported tensor dtype %v: want float32", t.Dtype())
	}
	if len(data) == 0 {
		return nil, errors.New("cannot render an empty tensor")
	}

	shape := t.Shape()
	var c, h, w int
	var chw bool
	switch {
	case len(shape) == 3 && shape[0] >= 1 && shape[0] <= 3:
		c, h, w = shape[0], shape[1], shape[2]
		chw = true
	case len(shape) == 3 && shape[2] >= 1 && shape[2] <= 3:
		h, w, c = shape[0], shape[1], shape[2]
	default:
		return nil, errors.Errorf("unsupported tensor shape %v: want CHW or HWC with 1-3 channels", shape)
	}

	lo, hi := data[0], data[0]
	for _, v := range data {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	scale := float32(0)
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	at := func(ch, y, x int) float32 {
		if chw {
			return data[ch*h*w+y*w+x]
		}
		return data[(y*w+x)*c+ch]
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var px [3]uint8
			for ch := 0; ch < 3; ch++ {
				src := ch
				if c == 1 {
					src = 0
				}
				if src < c {
					px[ch] = uint8(math32.Round((at(src, y, x) - lo) * scale))
				}
			}
			out.SetNRGBA(x, y, color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}

	return out, nil
}
