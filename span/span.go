package span

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ReduceSpan computes, for every label along axis, the span (max minus min)
// of the values along the opposite axis. The input is never mutated.
//
// The computation runs as two whole-table reductions, one for the maxima and
// one for the minima, followed by an element-wise subtraction. There is no
// per-label callback dispatch; in particular the Rows axis is handled by
// streaming every column once through per-row accumulators instead of
// assembling a row view per label.
func ReduceSpan(df dataframe.DataFrame, axis Axis) (Result, error) {
	if err := check(df, axis); err != nil {
		return Result{}, err
	}

	var labels []string
	var maxs, mins []float64
	switch axis {
	case Columns:
		labels = df.Names()
		maxs = columnMaxes(df)
		mins = columnMins(df)
	case Rows:
		labels = IndexLabels(df.Nrow())
		maxs = rowMaxes(df)
		mins = rowMins(df)
	}

	// NaN minus NaN stays NaN, so missing labels carry straight through.
	spans := append([]float64(nil), maxs...)
	floats.Sub(spans, mins)
	return NewResult(labels, spans), nil
}

func check(df dataframe.DataFrame, axis Axis) error {
	if axis != Columns && axis != Rows {
		return errors.Wrapf(ErrUnknownAxis, "%d", int(axis))
	}
	if df.Err != nil {
		return errors.Wrap(df.Err, "span: invalid table")
	}
	if df.Nrow() == 0 || df.Ncol() == 0 {
		return errors.Wrapf(ErrEmptyTable, "reduce over %s of a %dx%d table", axis, df.Nrow(), df.Ncol())
	}
	return nil
}

// columnMaxes is one bulk pass: each column is pulled out of the frame once
// and folded in a tight loop, skipping NaN cells.
func columnMaxes(df dataframe.DataFrame) []float64 {
	out := make([]float64, df.Ncol())
	for j, name := range df.Names() {
		best := math.NaN()
		for _, v := range df.Col(name).Float() {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(best) || v > best {
				best = v
			}
		}
		out[j] = best
	}
	return out
}

func columnMins(df dataframe.DataFrame) []float64 {
	out := make([]float64, df.Ncol())
	for j, name := range df.Names() {
		best := math.NaN()
		for _, v := range df.Col(name).Float() {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(best) || v < best {
				best = v
			}
		}
		out[j] = best
	}
	return out
}

// rowMaxes transposes the access pattern instead of the data: the backing
// store is column-major, so the pass walks each column once and updates a
// per-row accumulator slice.
func rowMaxes(df dataframe.DataFrame) []float64 {
	out := nanSlice(df.Nrow())
	for _, name := range df.Names() {
		for i, v := range df.Col(name).Float() {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(out[i]) || v > out[i] {
				out[i] = v
			}
		}
	}
	return out
}

func rowMins(df dataframe.DataFrame) []float64 {
	out := nanSlice(df.Nrow())
	for _, name := range df.Names() {
		for i, v := range df.Col(name).Float() {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(out[i]) || v < out[i] {
				out[i] = v
			}
		}
	}
	return out
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
