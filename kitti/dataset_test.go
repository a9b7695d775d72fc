package kitti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func smallTensor(fill float32) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(1, 1, 2),
		tensor.WithBacking([]float32{fill, fill}),
	)
}

func TestNewSemanticsDataset(t *testing.T) {
	a, b := smallTensor(1), smallTensor(2)

	ds, err := NewSemanticsDataset([]*tensor.Dense{a}, []*tensor.Dense{b})
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	x, y := ds.At(0)
	assert.Same(t, a, x)
	assert.Same(t, b, y)
}

func TestNewSemanticsDatasetLengthMismatch(t *testing.T) {
	_, err := NewSemanticsDataset([]*tensor.Dense{smallTensor(1)}, nil)
	assert.Error(t, err)
}

func TestNewDepthDataset(t *testing.T) {
	c, s, m, y := smallTensor(1), smallTensor(2), smallTensor(3), smallTensor(4)

	ds, err := NewDepthDataset(
		[]*tensor.Dense{c}, []*tensor.Dense{s},
		[]*tensor.Dense{m}, []*tensor.Dense{y})
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	gc, gs, gm, gy := ds.At(0)
	assert.Same(t, c, gc)
	assert.Same(t, s, gs)
	assert.Same(t, m, gm)
	assert.Same(t, y, gy)
}

func TestNewDepthDatasetLengthMismatch(t *testing.T) {
	one := []*tensor.Dense{smallTensor(1)}

	_, err := NewDepthDataset(one, one, one, nil)
	assert.Error(t, err)

	_, err = NewDepthDataset(one, nil, one, one)
	assert.Error(t, err)
}
