package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"goasterix/internal/asterix"
)

// missingCell is written for a canonical column a row does not carry.
const missingCell = "N/A"

// WriteCSV writes rows of one category to w. The header holds the
// canonical columns that occur in at least one row, in canonical order;
// absent cells render as N/A. Rows of other categories are ignored.
func WriteCSV(w io.Writer, cat asterix.Category, rows []*Row) error {
	used := make(map[string]bool)
	var matched []*Row
	for _, row := range rows {
		if row.Category != cat {
			continue
		}
		matched = append(matched, row)
		for col := range row.Cells {
			used[col] = true
		}
	}

	var header []string
	for _, col := range Columns(cat) {
		if used[col] {
			header = append(header, col)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	cells := make([]string, len(header))
	for _, row := range matched {
		for i, col := range header {
			if v, ok := row.Cells[col]; ok {
				cells[i] = v
			} else {
				cells[i] = missingCell
			}
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
