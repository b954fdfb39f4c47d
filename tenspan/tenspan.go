// Package tenspan is the dense-tensor backend for per-axis span reduction.
// It leans entirely on the tensor library's own axis reductions, which is
// the bulk-primitive form of the computation: one Max pass, one Min pass,
// one element-wise subtract.
//
// A dense tensor has no missing-value notion, so unlike the frame backends
// NaN cells propagate through the reductions instead of being skipped. Use
// the frame backends for data with holes in it.
package tenspan

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"

	"tabspan/span"
)

// ErrNotMatrix indicates the tensor is not two-dimensional.
var ErrNotMatrix = errors.New("tenspan: tensor must be two-dimensional")

// ReduceSpan computes max minus min along the opposite axis for every label
// on axis over a 2-D float64 tensor laid out as rows by columns. Labels are
// decimal indices on both axes, since tensors carry no column names.
func ReduceSpan(t *tensor.Dense, axis span.Axis) (span.Result, error) {
	if axis != span.Columns && axis != span.Rows {
		return span.Result{}, errors.Wrapf(span.ErrUnknownAxis, "%d", int(axis))
	}
	if t == nil {
		return span.Result{}, errors.Wrap(span.ErrEmptyTable, "nil tensor")
	}
	shape := t.Shape()
	if len(shape) != 2 {
		return span.Result{}, errors.Wrapf(ErrNotMatrix, "got shape %v", shape)
	}
	nrow, ncol := shape[0], shape[1]
	if nrow == 0 || ncol == 0 {
		return span.Result{}, errors.Wrapf(span.ErrEmptyTable, "reduce over %s of a %dx%d tensor", axis, nrow, ncol)
	}

	// Columns reduce down axis 0 (over the rows), Rows across axis 1.
	along := 0
	n := ncol
	if axis == span.Rows {
		along = 1
		n = nrow
	}

	maxT, err := t.Max(along)
	if err != nil {
		return span.Result{}, errors.Wrapf(err, "tenspan: max along %s", axis)
	}
	minT, err := t.Min(along)
	if err != nil {
		return span.Result{}, errors.Wrapf(err, "tenspan: min along %s", axis)
	}
	maxs, err := denseFloats(maxT, n)
	if err != nil {
		return span.Result{}, err
	}
	mins, err := denseFloats(minT, n)
	if err != nil {
		return span.Result{}, err
	}

	spans := append([]float64(nil), maxs...)
	floats.Sub(spans, mins)
	return span.NewResult(span.IndexLabels(n), spans), nil
}

// denseFloats unpacks a reduction result of expected length n. A length-one
// reduction may come back as a bare scalar.
func denseFloats(d *tensor.Dense, n int) ([]float64, error) {
	switch data := d.Data().(type) {
	case []float64:
		if len(data) != n {
			return nil, errors.Errorf("tenspan: reduction yielded %d values, want %d", len(data), n)
		}
		return data, nil
	case float64:
		if n != 1 {
			return nil, errors.Errorf("tenspan: reduction yielded a scalar, want %d values", n)
		}
		return []float64{data}, nil
	default:
		return nil, errors.Errorf("tenspan: unsupported tensor dtype %T, want float64", data)
	}
}
