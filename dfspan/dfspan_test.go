package dfspan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"tabspan/dfspan"
	"tabspan/span"
)

func TestReduceSpan_Columns(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesFloat64("a", nil, 1, 5, 3),
		dataframe.NewSeriesFloat64("b", nil, 2, 2, 2),
	)
	res, err := dfspan.ReduceSpan(context.Background(), df, span.Columns)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res.Labels())
	assert.InDeltaSlice(t, []float64{4, 0}, res.Values(), 1e-9)
}

func TestReduceSpan_Rows(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesFloat64("x", nil, 1, 4),
		dataframe.NewSeriesFloat64("y", nil, 2, 4),
		dataframe.NewSeriesFloat64("z", nil, 3, 4),
	)
	res, err := dfspan.ReduceSpan(context.Background(), df, span.Rows)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, res.Labels())
	assert.InDeltaSlice(t, []float64{2, 0}, res.Values(), 1e-9)
}

func TestReduceSpan_NilIsMissing(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesFloat64("score", nil, 10, nil, 30),
		dataframe.NewSeriesFloat64("base", nil, 1, 2, 3),
	)
	res, err := dfspan.ReduceSpan(context.Background(), df, span.Rows)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9, 0, 27}, res.Values(), 1e-9)
}

func TestReduceSpan_NonFloatSeriesDegrades(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesFloat64("a", nil, 1, 5),
		dataframe.NewSeriesString("s", nil, "p", "q"),
	)
	res, err := dfspan.ReduceSpan(context.Background(), df, span.Columns)
	require.NoError(t, err)

	v, ok := res.Value("a")
	require.True(t, ok)
	assert.InDelta(t, 4, v, 1e-9)
	v, ok = res.Value("s")
	require.True(t, ok)
	assert.True(t, span.IsMissing(v))
}

func TestReduceSpan_EmptyTable(t *testing.T) {
	_, err := dfspan.ReduceSpan(context.Background(), nil, span.Columns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, span.ErrEmptyTable))

	df := dataframe.NewDataFrame(dataframe.NewSeriesFloat64("a", nil))
	_, err = dfspan.ReduceSpan(context.Background(), df, span.Rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, span.ErrEmptyTable))
}

func TestReduceSpan_CancelledContext(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesFloat64("a", nil, 1, 2),
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfspan.ReduceSpan(ctx, df, span.Columns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
