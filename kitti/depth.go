package kitti

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/RusCucumber/cgo-groupwork/images"
	"github.com/RusCucumber/cgo-groupwork/preprocess"
)

// imageToken is the delimiter the depth completion filenames are built
// around: <prefix>_image_<suffix>.
const imageToken = "_image_"

// splitImageToken splits a depth completion filename into its prefix and
// suffix. The sibling sparse depth and ground truth files substitute their
// own token for the image token between the two parts. A name with zero or
// multiple occurrences of the token does not fit the naming scheme and is
// rejected instead of guessed at.
func splitImageToken(name string) (prefix, suffix string, err error) {
	parts := strings.Split(name, imageToken)
	if len(parts) != 2 {
		return "", "", errors.Errorf("filename %q must contain exactly one %q, found %d", name, imageToken, len(parts)-1)
	}
	return parts[0], parts[1], nil
}

// LoadDepthDataset walks the val_selection_cropped portion of the KITTI
// depth completion archive under dir and returns the train and validation
// partitions.
//
// For every image/<prefix>_image_<suffix>.png the loader reads
// velodyne_raw/<prefix>_velodyne_raw_<suffix>.png (sparse depth) and
// groundtruth_depth/<prefix>_groundtruth_depth_<suffix>.png. The validity
// mask is thresholded from the raw sparse depth raster before that raster is
// resized or normalized. The four parallel collections are split with a
// single permutation so rows stay aligned across fields.
func LoadDepthDataset(dir string, opts Options) (train, val *DepthDataset, err error) {
	if err := checkLoadDir(dir); err != nil {
		return nil, nil, err
	}

	colorCfg := preprocess.ColorConfig()
	depthCfg := preprocess.DepthConfig()

	paths, err := filepath.Glob(filepath.Join(dir, "val_selection_cropped", "image", "*.png"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to enumerate depth completion frames")
	}

	var colorT, sensorT, maskT, targetT []*tensor.Dense
	for _, path := range paths {
		name := filepath.Base(path)

		x, err := loadTensor(path, colorCfg)
		if err != nil {
			return nil, nil, err
		}
		colorT = append(colorT, x)

		prefix, suffix, err := splitImageToken(name)
		if err != nil {
			return nil, nil, err
		}

		sensorPath := filepath.Join(dir, "val_selection_cropped", "velodyne_raw",
			prefix+"_velodyne_raw_"+suffix)
		sensorImg, err := images.LoadImage(sensorPath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "missing or unreadable sparse depth for %s", name)
		}

		maskImg := images.GenerateMask(sensorImg)

		s, err := depthCfg.Run(sensorImg)
		if err != nil {
			return nil, nil, err
		}
		sensorT = append(sensorT, s)

		m, err := depthCfg.Run(maskImg)
		if err != nil {
			return nil, nil, err
		}
		maskT = append(maskT, m)

		gtPath := filepath.Join(dir, "val_selection_cropped", "groundtruth_depth",
			prefix+"_groundtruth_depth_"+suffix)
		y, err := loadTensor(gtPath, depthCfg)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "missing or unreadable ground truth depth for %s", name)
		}
		targetT = append(targetT, y)
	}

	trainIdx, valIdx, err := trainValSplit(len(colorT), opts)
	if err != nil {
		return nil, nil, err
	}

	train, err = NewDepthDataset(
		pick(colorT, trainIdx), pick(sensorT, trainIdx),
		pick(maskT, trainIdx), pick(targetT, trainIdx))
	if err != nil {
		return nil, nil, err
	}
	val, err = NewDepthDataset(
		pick(colorT, valIdx), pick(sensorT, valIdx),
		pick(maskT, valIdx), pick(targetT, valIdx))
	if err != nil {
		return nil, nil, err
	}

	return train, val, nil
}

// LoadDepthTestDataset walks the test_depth_completion_anonymous portion of
// the archive and returns the single test partition. Sparse depth files
// share the color filename verbatim here, with no token rewriting. The test
// split ships without ground truth, so targets are synthesized as all-zero
// tensors shaped like the color input, not like the depth input.
func LoadDepthTestDataset(dir string) (*DepthDataset, error) {
	if err := checkLoadDir(dir); err != nil {
		return nil, err
	}

	colorCfg := preprocess.ColorConfig()
	depthCfg := preprocess.DepthConfig()

	paths, err := filepath.Glob(filepath.Join(dir, "test_depth_completion_anonymous", "image", "*.png"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate depth completion test frames")
	}

	var colorT, sensorT, maskT, targetT []*tensor.Dense
	for _, path := range paths {
		name := filepath.Base(path)

		x, err := loadTensor(path, colorCfg)
		if err != nil {
			return nil, err
		}
		colorT = append(colorT, x)

		sensorPath := filepath.Join(dir, "test_depth_completion_anonymous", "velodyne_raw", name)
		sensorImg, err := images.LoadImage(sensorPath)
		if err != nil {
			return nil, errors.Wrapf(err, "missing or unreadable sparse depth for %s", name)
		}

		maskImg := images.GenerateMask(sensorImg)

		s, err := depthCfg.Run(sensorImg)
		if err != nil {
			return nil, err
		}
		sensorT = append(sensorT, s)

		m, err := depthCfg.Run(maskImg)
		if err != nil {
			return nil, err
		}
		maskT = append(maskT, m)

		targetT = append(targetT, colorCfg.Zeros())
	}

	return NewDepthDataset(colorT, sensorT, maskT, targetT)
}
