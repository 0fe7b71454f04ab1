package workbook

import "github.com/de-tools/sheet-metrics/pkg/models/domain"

// NumericColumns returns the names of the columns whose every non-missing
// cell is a number, in table column order. A single text, boolean, or
// time cell disqualifies the whole column. Columns with no values at all
// still qualify here; they drop out later because they produce no
// statistics.
func NumericColumns(t *domain.Table) []string {
	var numeric []string
	for i, name := range t.Columns {
		if isNumericColumn(t, i) {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

func isNumericColumn(t *domain.Table, col int) bool {
	for _, row := range t.Rows {
		switch row[col].Kind {
		case domain.CellNumber, domain.CellMissing:
		default:
			return false
		}
	}
	return true
}

// ColumnValues returns the non-missing numeric values of the named column
// in row order.
func ColumnValues(t *domain.Table, name string) []float64 {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	var values []float64
	for _, row := range t.Rows {
		if row[idx].Kind == domain.CellNumber {
			values = append(values, row[idx].Number)
		}
	}
	return values
}
