// Package kitti loads the KITTI semantic segmentation and depth completion
// archives into in-memory, index-addressable tensor datasets.
package kitti

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// SemanticsDataset pairs camera frames with RGB-encoded semantic label maps.
// It is built once from parallel slices and not mutated afterwards.
type SemanticsDataset struct {
	inputs  []*tensor.Dense
	targets []*tensor.Dense
}

// NewSemanticsDataset builds a dataset from two parallel tensor slices of
// equal length.
func NewSemanticsDataset(inputs, targets []*tensor.Dense) (*SemanticsDataset, error) {
	if len(inputs) != len(targets) {
		return nil, errors.Errorf("inputs and targets length mismatch: %d != %d", len(inputs), len(targets))
	}
	return &SemanticsDataset{inputs: inputs, targets: targets}, nil
}

// Len returns the number of samples.
func (d *SemanticsDataset) Len() int { return len(d.inputs) }

// At returns the (input, target) pair at index i.
func (d *SemanticsDataset) At(i int) (x, y *tensor.Dense) {
	return d.inputs[i], d.targets[i]
}

// DepthDataset pairs camera frames with the sparse depth readings, their
// validity masks and the ground-truth depth. The four slices run in parallel:
// row i of each belongs to the same frame.
type DepthDataset struct {
	color  []*tensor.Dense
	sensor []*tensor.Dense
	mask   []*tensor.Dense
	target []*tensor.Dense
}

// NewDepthDataset builds a dataset from four parallel tensor slices of equal
// length.
func NewDepthDataset(color, sensor, mask, target []*tensor.Dense) (*DepthDataset, error) {
	n := len(color)
	if len(sensor) != n || len(mask) != n || len(target) != n {
		return nil, errors.Errorf("parallel slices length mismatch: color=%d sensor=%d mask=%d target=%d",
			n, len(sensor), len(mask), len(target))
	}
	return &DepthDataset{color: color, sensor: sensor, mask: mask, target: target}, nil
}

// Len returns the number of samples.
func (d *DepthDataset) Len() int { return len(d.color) }

// At returns the (color, sensor, mask, target) tuple at index i.
func (d *DepthDataset) At(i int) (color, sensor, mask, target *tensor.Dense) {
	return d.color[i], d.sensor[i], d.mask[i], d.target[i]
}
