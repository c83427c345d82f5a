package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a parsed single-column cell range such as "A1:A10", or a
// single cell ("B3", one row).
type Range struct {
	Column   string // column letters, e.g. "A" or "BC"
	StartRow int    // 1-indexed first row
	EndRow   int    // 1-indexed last row, ≥ StartRow
}

// ParseRange parses "A1", "A1:A10" and friends.
//
// Contract: the column part is one or more letters, the row part a
// positive integer; in the two-part form both parts must name the same
// column and the end row must not precede the start row.
//
// Errors: ErrBadRange (wrapped with the offending input).
func ParseRange(input string) (Range, error) {
	parts := strings.Split(input, ":")
	switch len(parts) {
	case 1:
		col, row, err := parseCell(parts[0])
		if err != nil {
			return Range{}, err
		}

		return Range{Column: col, StartRow: row, EndRow: row}, nil

	case 2:
		col, start, err := parseCell(parts[0])
		if err != nil {
			return Range{}, err
		}
		endCol, end, err := parseCell(parts[1])
		if err != nil {
			return Range{}, err
		}
		if endCol != col || end < start {
			return Range{}, fmt.Errorf("%w: %q", ErrBadRange, input)
		}

		return Range{Column: col, StartRow: start, EndRow: end}, nil

	default:
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, input)
	}
}

// parseCell splits "BC42" into column "BC" and row 42.
func parseCell(cell string) (string, int, error) {
	i := 0
	for i < len(cell) && isColLetter(cell[i]) {
		i++
	}
	if i == 0 || i == len(cell) {
		return "", 0, fmt.Errorf("%w: %q", ErrBadRange, cell)
	}

	row, err := strconv.Atoi(cell[i:])
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("%w: %q", ErrBadRange, cell)
	}

	return cell[:i], row, nil
}

func isColLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Rows returns the number of rows the range spans.
func (r Range) Rows() int { return r.EndRow - r.StartRow + 1 }

// Cell returns the reference at the given zero-based offset from the
// start of the range; single-cell ranges broadcast to every offset.
//
// Errors: ErrRowOutOfRange when the offset exceeds a multi-row range.
func (r Range) Cell(offset int) (string, error) {
	if r.Rows() == 1 {
		return r.Column + strconv.Itoa(r.StartRow), nil
	}

	row := r.StartRow + offset
	if offset < 0 || row > r.EndRow {
		return "", fmt.Errorf("%w: offset %d in %s%d:%s%d",
			ErrRowOutOfRange, offset, r.Column, r.StartRow, r.Column, r.EndRow)
	}

	return r.Column + strconv.Itoa(row), nil
}
