package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// bounds tracks the bounding box of non-empty cells (1-based coordinates).
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

func (b *bounds) add(row, col int) {
	if b.minRow == 0 || row < b.minRow {
		b.minRow = row
	}
	if row > b.maxRow {
		b.maxRow = row
	}
	if b.minCol == 0 || col < b.minCol {
		b.minCol = col
	}
	if col > b.maxCol {
		b.maxCol = col
	}
}

func (b *bounds) empty() bool {
	return b.minRow == 0
}

// rangeRef converts the box to Excel range notation, e.g. "A1:D10".
// It returns "" when no cell was added.
func (b *bounds) rangeRef() (string, error) {
	if b.empty() {
		return "", nil
	}
	startCell, err := excelize.CoordinatesToCellName(b.minCol, b.minRow)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(b.maxCol, b.maxRow)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}
