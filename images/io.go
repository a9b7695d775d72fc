// Package images - image decoding and raster utilities for the KITTI
// preprocessing pipeline.
package images

import (
	"image"
	"os"

	// The KITTI archives ship PNG files only.
	_ "image/png"

	"github.com/pkg/errors"
)

// LoadImage opens and decodes a single image file.
//
// Arguments:
// - path: Path to the image file.
//
// Returns:
// - image.Image: The decoded image.
// - error: An error if the file cannot be opened or decoded.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}
	return img, nil
}
