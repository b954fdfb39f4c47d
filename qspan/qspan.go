// Package qspan is the qframe backend for per-axis span reduction. It reads
// every column through the frame's typed views, so the Rows axis costs the
// same column-at-a-time streaming as the Columns axis and no row view is
// ever materialized.
package qspan

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tobgu/qframe"
	"gonum.org/v1/gonum/floats"

	"tabspan/span"
)

// ReduceSpan computes max minus min along the opposite axis for every label
// on axis, with the same contract as span.ReduceSpan. Columns that expose
// neither a float nor an int view are treated as entirely missing.
func ReduceSpan(qf qframe.QFrame, axis span.Axis) (span.Result, error) {
	if axis != span.Columns && axis != span.Rows {
		return span.Result{}, errors.Wrapf(span.ErrUnknownAxis, "%d", int(axis))
	}
	if qf.Err != nil {
		return span.Result{}, errors.Wrap(qf.Err, "qspan: invalid table")
	}
	names := qf.ColumnNames()
	nrow := qf.Len()
	if nrow == 0 || len(names) == 0 {
		return span.Result{}, errors.Wrapf(span.ErrEmptyTable, "reduce over %s of a %dx%d table", axis, nrow, len(names))
	}

	if axis == span.Columns {
		values := make([]float64, len(names))
		for j, name := range names {
			vals, ok := columnFloats(qf, name)
			if !ok {
				values[j] = math.NaN()
				continue
			}
			lo, hi := minMax(vals)
			values[j] = hi - lo
		}
		return span.NewResult(names, values), nil
	}

	maxs := nanSlice(nrow)
	mins := nanSlice(nrow)
	for _, name := range names {
		vals, ok := columnFloats(qf, name)
		if !ok {
			continue
		}
		for i, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(maxs[i]) || v > maxs[i] {
				maxs[i] = v
			}
			if math.IsNaN(mins[i]) || v < mins[i] {
				mins[i] = v
			}
		}
	}
	floats.Sub(maxs, mins)
	return span.NewResult(span.IndexLabels(nrow), maxs), nil
}

// columnFloats extracts a column as floats, trying the float view first and
// falling back to the int view.
func columnFloats(qf qframe.QFrame, name string) ([]float64, bool) {
	if fv, err := qf.FloatView(name); err == nil {
		return fv.Slice(), true
	}
	iv, err := qf.IntView(name)
	if err != nil {
		return nil, false
	}
	ints := iv.Slice()
	vals := make([]float64, len(ints))
	for i, v := range ints {
		vals[i] = float64(v)
	}
	return vals, true
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
