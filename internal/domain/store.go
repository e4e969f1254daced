package domain

import "context"

// RecordStore is the external tabular persistence collaborator. The
// contract is range-addressed: reads return raw cell values in row order
// starting below the header row, writes address a single absolute cell,
// and appends add a row to the end of a named range. The mapping from
// column index to logical field is agreed out-of-band, not derived from
// a header row at runtime.
type RecordStore interface {
	// ReadRange returns the raw cell values of an A1-notation range.
	// Trailing empty cells may be absent from a row.
	ReadRange(ctx context.Context, readRange string) ([][]string, error)
	// UpdateCell overwrites a single cell addressed in A1 notation.
	UpdateCell(ctx context.Context, cell string, value interface{}) error
	// AppendRow appends one row after the last row of the given range.
	AppendRow(ctx context.Context, appendRange string, row []interface{}) error
}
