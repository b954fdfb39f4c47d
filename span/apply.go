package span

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// SpanByApply computes the same mapping as ReduceSpan through per-label
// callback dispatch: one function invocation per column (Capply) or per row
// (Rapply), each invocation re-scanning its own slice.
//
// Keep this for comparison, not for production use. On the Rows axis the
// frame must materialize a fresh row series per invocation out of its
// column-major storage, which makes this variant far more expensive than
// the bulk passes in ReduceSpan while producing identical values.
func SpanByApply(df dataframe.DataFrame, axis Axis) (Result, error) {
	if err := check(df, axis); err != nil {
		return Result{}, err
	}

	spanOf := func(s series.Series) series.Series {
		return series.Floats([]float64{seriesSpan(s)})
	}

	switch axis {
	case Columns:
		out := df.Capply(spanOf)
		if out.Err != nil {
			return Result{}, errors.Wrap(out.Err, "span: column apply")
		}
		values := make([]float64, df.Ncol())
		for j := range values {
			values[j] = out.Elem(0, j).Float()
		}
		return NewResult(df.Names(), values), nil
	default:
		out := df.Rapply(spanOf)
		if out.Err != nil {
			return Result{}, errors.Wrap(out.Err, "span: row apply")
		}
		values := make([]float64, df.Nrow())
		for i := range values {
			values[i] = out.Elem(i, 0).Float()
		}
		return NewResult(IndexLabels(df.Nrow()), values), nil
	}
}

// seriesSpan folds a single slice, skipping NaN cells. NaN when the slice
// holds no valid value.
func seriesSpan(s series.Series) float64 {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range s.Float() {
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
	return hi - lo
}
