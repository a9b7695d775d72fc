package kitti

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/RusCucumber/cgo-groupwork/images"
	"github.com/RusCucumber/cgo-groupwork/preprocess"
)

// checkLoadDir validates the dataset root before any file is decoded.
func checkLoadDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("load dir must be a non-empty path")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "failed to stat load dir %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("load dir %s is not a directory", dir)
	}
	return nil
}

// loadTensor decodes one image file and runs it through the given pipeline.
func loadTensor(path string, cfg preprocess.Config) (*tensor.Dense, error) {
	img, err := images.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return cfg.Run(img)
}

// LoadSemanticsDataset walks the KITTI semantic segmentation archive under
// dir and returns the train, validation and test partitions.
//
// Every training/image_2/*.png must have a label map with the same filename
// under training/semantic_rgb; a missing pair aborts the whole load and no
// partial dataset is returned. Label maps stay RGB-encoded, they are not
// decoded into class indices. Frames under testing/image_2 ship without
// ground truth, so their targets are synthesized as all-zero tensors shaped
// like the color input.
func LoadSemanticsDataset(dir string, opts Options) (train, val, test *SemanticsDataset, err error) {
	if err := checkLoadDir(dir); err != nil {
		return nil, nil, nil, err
	}

	colorCfg := preprocess.ColorConfig()

	paths, err := filepath.Glob(filepath.Join(dir, "training", "image_2", "*.png"))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to enumerate training frames")
	}

	var inputs, targets []*tensor.Dense
	for _, path := range paths {
		x, err := loadTensor(path, colorCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		inputs = append(inputs, x)

		labelPath := filepath.Join(dir, "training", "semantic_rgb", filepath.Base(path))
		y, err := loadTensor(labelPath, colorCfg)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "missing or unreadable label map for %s", filepath.Base(path))
		}
		targets = append(targets, y)
	}

	trainIdx, valIdx, err := trainValSplit(len(inputs), opts)
	if err != nil {
		return nil, nil, nil, err
	}

	train, err = NewSemanticsDataset(pick(inputs, trainIdx), pick(targets, trainIdx))
	if err != nil {
		return nil, nil, nil, err
	}
	val, err = NewSemanticsDataset(pick(inputs, valIdx), pick(targets, valIdx))
	if err != nil {
		return nil, nil, nil, err
	}

	testPaths, err := filepath.Glob(filepath.Join(dir, "testing", "image_2", "*.png"))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to enumerate test frames")
	}

	var testInputs, testTargets []*tensor.Dense
	for _, path := range testPaths {
		x, err := loadTensor(path, colorCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		testInputs = append(testInputs, x)
		testTargets = append(testTargets, colorCfg.Zeros())
	}

	test, err = NewSemanticsDataset(testInputs, testTargets)
	if err != nil {
		return nil, nil, nil, err
	}

	return train, val, test, nil
}
