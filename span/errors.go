package span

import "github.com/pkg/errors"

var (
	// ErrEmptyTable indicates the table has zero rows or zero columns, so
	// there is nothing to reduce along the requested axis.
	ErrEmptyTable = errors.New("span: table must have at least one row and one column")
	// ErrUnknownAxis indicates an Axis value other than Columns or Rows.
	ErrUnknownAxis = errors.New("span: unknown axis")
)
