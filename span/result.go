package span

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is an ordered mapping from axis label to reduced value. Labels keep
// the table's column order (or row order) at the time of the reduction.
// A NaN value marks a label whose slice held no valid numeric cell.
type Result struct {
	labels []string
	values []float64
}

// NewResult builds a Result from parallel label and value slices. Both
// slices are copied. It panics if the lengths differ, since that can only
// come from a bug in the caller.
func NewResult(labels []string, values []float64) Result {
	if len(labels) != len(values) {
		panic("span: label and value counts differ")
	}
	r := Result{
		labels: make([]string, len(labels)),
		values: make([]float64, len(values)),
	}
	copy(r.labels, labels)
	copy(r.values, values)
	return r
}

// Len returns the number of labels in the mapping.
func (r Result) Len() int { return len(r.labels) }

// Labels returns the labels in order. The returned slice is a copy.
func (r Result) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Values returns the values in label order. The returned slice is a copy.
func (r Result) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// At returns the i-th label and its value.
func (r Result) At(i int) (string, float64) {
	return r.labels[i], r.values[i]
}

// Value looks a label up by name. The second return is false when the label
// is not present.
func (r Result) Value(label string) (float64, bool) {
	for i, l := range r.labels {
		if l == label {
			return r.values[i], true
		}
	}
	return 0, false
}

func (r Result) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, l := range r.labels {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %g", l, r.values[i])
	}
	b.WriteByte('}')
	return b.String()
}

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// IndexLabels returns the labels used for integer-indexed axes: the decimal
// strings "0" through "n-1".
func IndexLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
