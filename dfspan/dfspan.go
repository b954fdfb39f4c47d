// Package dfspan is the dataframe-go backend for per-axis span reduction.
// It follows that library's conventions: a context on the call and the
// frame's lock held for the duration of the scan.
package dfspan

import (
	"context"
	"math"

	"github.com/pkg/errors"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"gonum.org/v1/gonum/floats"

	"tabspan/span"
)

// ReduceSpan computes max minus min along the opposite axis for every label
// on axis, with the same contract as span.ReduceSpan. Only float64 series
// contribute values; series of any other type are treated as entirely
// missing. The context is checked between column passes.
func ReduceSpan(ctx context.Context, df *dataframe.DataFrame, axis span.Axis) (span.Result, error) {
	if axis != span.Columns && axis != span.Rows {
		return span.Result{}, errors.Wrapf(span.ErrUnknownAxis, "%d", int(axis))
	}
	if df == nil || len(df.Series) == 0 {
		return span.Result{}, errors.Wrapf(span.ErrEmptyTable, "reduce over %s of an empty table", axis)
	}

	df.Lock()
	defer df.Unlock()

	nrow := df.Series[0].NRows()
	if nrow == 0 {
		return span.Result{}, errors.Wrapf(span.ErrEmptyTable, "reduce over %s of a table with no rows", axis)
	}

	if axis == span.Columns {
		names := make([]string, len(df.Series))
		values := make([]float64, len(df.Series))
		for j, s := range df.Series {
			if err := ctx.Err(); err != nil {
				return span.Result{}, err
			}
			names[j] = s.Name()
			vals, ok := seriesFloats(s)
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
	for _, s := range df.Series {
		if err := ctx.Err(); err != nil {
			return span.Result{}, err
		}
		vals, ok := seriesFloats(s)
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

// seriesFloats exposes a series' backing values without copying. Missing
// cells are already NaN in a SeriesFloat64.
func seriesFloats(s dataframe.Series) ([]float64, bool) {
	sf, ok := s.(*dataframe.SeriesFloat64)
	if !ok {
		return nil, false
	}
	return sf.Values, true
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
