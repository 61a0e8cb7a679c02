package output

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// dataRange returns the cell range (e.g. "A1:J8761") covering a header row
// plus rows data rows over cols columns.
func dataRange(rows, cols int) (string, error) {
	if rows < 0 || cols < 1 {
		return "", fmt.Errorf("invalid table size %dx%d", rows, cols)
	}
	startCell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// tableName returns an Excel table name for a model variant sheet.
// Table names may only hold letters, digits, underscores and periods.
func tableName(sheet string) string {
	var b strings.Builder
	b.WriteString("tbl_")
	for _, r := range sheet {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
