package images

import (
	"image"
	"image/color"
)

// GenerateMask derives a binary validity mask from a sparse depth raster.
// Every pixel carrying a reading (value greater than zero) maps to 1, all
// others to 0. This is a pointwise threshold, so the operation is idempotent,
// and an all-zero input yields an all-zero mask: no valid depth anywhere is a
// legitimate result, not an error.
//
// Arguments:
// - img: The sparse depth image (single channel, 16-bit in KITTI).
//
// Returns:
// - *image.Gray16: A same-size raster holding 0 or 1 per pixel.
func GenerateMask(img image.Image) *image.Gray16 {
	bounds := img.Bounds()
	mask := image.NewGray16(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v, _, _, _ := img.At(x, y).RGBA()
			if v > 0 {
				mask.SetGray16(x, y, color.Gray16{Y: 1})
			}
		}
	}

	return mask
}
