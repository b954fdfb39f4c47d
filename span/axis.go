package span

import "fmt"

// Axis selects which labels a reduction produces results for. Reducing over
// Columns folds each column's values (one result per column name); reducing
// over Rows folds each row's values (one result per row index).
type Axis int

const (
	Columns Axis = iota
	Rows
)

func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}
