package domain

import "time"

// CellKind tags the value variant a Cell carries.
type CellKind uint8

const (
	CellMissing CellKind = iota
	CellNumber
	CellText
	CellBool
	CellTime
)

// Cell is a single table cell. Kind selects which value field is set.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Bool   bool
	Time   time.Time
}

// Value returns the cell's native Go value, or nil for a missing cell.
func (c Cell) Value() any {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		return c.Text
	case CellBool:
		return c.Bool
	case CellTime:
		return c.Time
	default:
		return nil
	}
}

// Table is one sheet extracted into typed cells. The header row becomes
// Columns; every data row holds exactly len(Columns) cells. Column names
// are unique within a table.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// ColumnIndex returns the position of the named column, or -1 when the
// table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
