package sheet

import "errors"

var (
	// ErrBadRange indicates a cell range that is not "A1", "A1:A10"-shaped,
	// or whose end row precedes its start row.
	ErrBadRange = errors.New("sheet: malformed cell range")

	// ErrRowOutOfRange indicates a row offset beyond a range's extent.
	ErrRowOutOfRange = errors.New("sheet: row offset out of range")

	// ErrUnboundName indicates a formula identifier with no cell mapping.
	// Unreachable through Formulas, which parses strictly against the
	// variable set; it guards direct Excel rendering of foreign trees.
	ErrUnboundName = errors.New("sheet: name has no cell reference")
)
