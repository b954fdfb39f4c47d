// Package coerce converts string-typed table columns to numeric ones,
// mapping designated marker strings (and the empty string) to NaN.
//
// Conversion runs once per column through the frame's per-column dispatch.
// That dispatch pattern is the wrong tool for numeric folds, where bulk
// reductions exist, but it is the right one here: parsing is not expressible
// as a built-in bulk primitive, and per-column keeps the dispatch count at
// the number of columns rather than the number of cells.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

var nan = math.NaN()

// NonNumericError reports a cell that is neither parseable as a number nor
// one of the recognized missing-value markers. It aborts the whole coercion
// call: unlike a missing measurement, an unrecognized token means the column
// is not the kind of data the caller thinks it is.
type NonNumericError struct {
	Column string
	Row    int
	Value  string
}

func (e *NonNumericError) Error() string {
	return fmt.Sprintf("coerce: column %q row %d: %q is neither numeric nor a recognized missing-value marker",
		e.Column, e.Row, e.Value)
}

// ToNumeric returns a copy of df in which every string-typed column has been
// converted to floats. Cells equal to one of the sentinel strings, or empty,
// become NaN. Columns that are already numeric pass through unchanged. The
// input frame is not modified.
func ToNumeric(df dataframe.DataFrame, sentinels ...string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(df.Err, "coerce: invalid table")
	}

	markers := markerSet(sentinels)
	var failed error
	out := df.Capply(func(s series.Series) series.Series {
		if failed != nil {
			return s
		}
		if s.Type() == series.Float || s.Type() == series.Int {
			return s
		}
		conv, err := column(s, markers)
		if err != nil {
			failed = err
			return s
		}
		return conv
	})
	if failed != nil {
		return dataframe.DataFrame{}, failed
	}
	if out.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(out.Err, "coerce")
	}
	return out, nil
}

// Column converts a single series, with the same rules as ToNumeric.
func Column(s series.Series, sentinels ...string) (series.Series, error) {
	if s.Type() == series.Float || s.Type() == series.Int {
		return s, nil
	}
	return column(s, markerSet(sentinels))
}

func column(s series.Series, markers map[string]struct{}) (series.Series, error) {
	records := s.Records()
	vals := make([]float64, len(records))
	for i, rec := range records {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			vals[i] = nan
			continue
		}
		if _, ok := markers[rec]; ok {
			vals[i] = nan
			continue
		}
		v, err := strconv.ParseFloat(rec, 64)
		if err != nil {
			return s, &NonNumericError{Column: s.Name, Row: i, Value: rec}
		}
		vals[i] = v
	}
	out := series.Floats(vals)
	out.Name = s.Name
	return out, nil
}

func markerSet(sentinels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(sentinels))
	for _, s := range sentinels {
		set[s] = struct{}{}
	}
	return set
}
