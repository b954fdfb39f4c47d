package qspan_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobgu/qframe"

	"tabspan/qspan"
	"tabspan/span"
)

// column names are chosen already alphabetical: qframe orders columns that
// way by default

func TestReduceSpan_Columns(t *testing.T) {
	qf := qframe.New(map[string]interface{}{
		"a": []float64{1, 5, 3},
		"b": []float64{2, 2, 2},
	})
	res, err := qspan.ReduceSpan(qf, span.Columns)
	require.NoError(t, err)
	require.Equal(t, qf.ColumnNames(), res.Labels())

	v, ok := res.Value("a")
	require.True(t, ok)
	assert.InDelta(t, 4, v, 1e-9)
	v, ok = res.Value("b")
	require.True(t, ok)
	assert.InDelta(t, 0, v, 1e-9)
}

func TestReduceSpan_Rows(t *testing.T) {
	qf := qframe.New(map[string]interface{}{
		"x": []float64{1, 4},
		"y": []float64{2, 4},
		"z": []float64{3, 4},
	})
	res, err := qspan.ReduceSpan(qf, span.Rows)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, res.Labels())
	vals := res.Values()
	assert.InDelta(t, 2, vals[0], 1e-9)
	assert.InDelta(t, 0, vals[1], 1e-9)
}

func TestReduceSpan_IntColumns(t *testing.T) {
	qf := qframe.New(map[string]interface{}{
		"n": []int{1, 2, 9},
	})
	res, err := qspan.ReduceSpan(qf, span.Columns)
	require.NoError(t, err)
	v, ok := res.Value("n")
	require.True(t, ok)
	assert.InDelta(t, 8, v, 1e-9)
}

func TestReduceSpan_NonNumericColumnDegrades(t *testing.T) {
	qf := qframe.New(map[string]interface{}{
		"a": []float64{1, 5},
		"s": []string{"p", "q"},
	})
	res, err := qspan.ReduceSpan(qf, span.Columns)
	require.NoError(t, err)

	v, ok := res.Value("a")
	require.True(t, ok)
	assert.InDelta(t, 4, v, 1e-9)
	v, ok = res.Value("s")
	require.True(t, ok)
	assert.True(t, span.IsMissing(v))

	// the string column contributes nothing to row reductions either
	rows, err := qspan.ReduceSpan(qf, span.Rows)
	require.NoError(t, err)
	vals := rows.Values()
	assert.InDelta(t, 0, vals[0], 1e-9)
	assert.InDelta(t, 0, vals[1], 1e-9)
}

func TestReduceSpan_MissingCells(t *testing.T) {
	qf := qframe.New(map[string]interface{}{
		"a": []float64{1, math.NaN(), 5},
	})
	res, err := qspan.ReduceSpan(qf, span.Rows)
	require.NoError(t, err)
	vals := res.Values()
	assert.InDelta(t, 0, vals[0], 1e-9)
	assert.True(t, span.IsMissing(vals[1]))
	assert.InDelta(t, 0, vals[2], 1e-9)
}

func TestReduceSpan_EmptyTable(t *testing.T) {
	qf := qframe.New(map[string]interface{}{
		"a": []float64{},
	})
	_, err := qspan.ReduceSpan(qf, span.Columns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, span.ErrEmptyTable))
}

// Both frame backends must agree on the same numeric data.
func TestReduceSpan_AgreesWithGotaBackend(t *testing.T) {
	a := []float64{1.5, -2, 7, 0}
	b := []float64{3, 3, 3, 3}
	qf := qframe.New(map[string]interface{}{"a": a, "b": b})
	df := dataframe.New(
		series.New(a, series.Float, "a"),
		series.New(b, series.Float, "b"),
	)

	for _, axis := range []span.Axis{span.Columns, span.Rows} {
		qres, err := qspan.ReduceSpan(qf, axis)
		require.NoError(t, err, "axis %s", axis)
		gres, err := span.ReduceSpan(df, axis)
		require.NoError(t, err, "axis %s", axis)
		require.Equal(t, gres.Labels(), qres.Labels(), "axis %s", axis)
		assert.InDeltaSlice(t, gres.Values(), qres.Values(), 1e-9, "axis %s", axis)
	}
}
