package kitti

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Options controls how loaders partition samples into train and validation.
type Options struct {
	// ValRatio is the fraction of samples held out for validation.
	ValRatio float64
	// Shuffle randomizes the partition. When false the validation set is the
	// tail of the enumeration order.
	Shuffle bool
	// Seed fixes the shuffle permutation so a split can be reproduced. A nil
	// Seed draws a fresh permutation on every call.
	Seed *int64
}

// DefaultOptions returns the loader defaults: 20% validation, shuffled,
// unseeded.
func DefaultOptions() Options {
	return Options{ValRatio: 0.2, Shuffle: true}
}

// trainValSplit partitions the indices [0, n) into disjoint train and
// validation index sets. One call produces one permutation, so parallel
// collections selected with the returned indices stay row-aligned.
func trainValSplit(n int, opts Options) (train, val []int, err error) {
	if n == 0 {
		return nil, nil, errors.New("cannot split an empty sample collection")
	}
	if opts.ValRatio < 0 || opts.ValRatio > 1 {
		return nil, nil, errors.Errorf("val ratio must be in [0, 1], got %v", opts.ValRatio)
	}

	valCount := int(math.Ceil(float64(n) * opts.ValRatio))
	if valCount > n {
		valCount = n
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	if opts.Shuffle {
		seed := time.Now().UnixNano()
		if opts.Seed != nil {
			seed = *opts.Seed
		}
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		return order[valCount:], order[:valCount], nil
	}

	cut := n - valCount
	return order[:cut], order[cut:], nil
}

// pick returns the elements of src selected by indices, in index order.
func pick(src []*tensor.Dense, indices []int) []*tensor.Dense {
	out := make([]*tensor.Dense, len(indices))
	for i, idx := range indices {
		out[i] = src[idx]
	}
	return out
}
