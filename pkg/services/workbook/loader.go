package workbook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
)

// ErrMalformedWorkbook marks content that cannot be decoded as a workbook.
var ErrMalformedWorkbook = errors.New("malformed workbook")

// Loader decodes workbook bytes into an open Workbook.
type Loader interface {
	Open(ctx context.Context, content []byte) (Workbook, error)
}

// Workbook gives access to the sheets of one decoded workbook. Sheets
// returns names in source order; Table extracts a single sheet into a
// typed table.
type Workbook interface {
	Sheets() []string
	Table(ctx context.Context, sheet string) (*domain.Table, error)
	Close() error
}

type excelLoader struct{}

func NewLoader() Loader {
	return &excelLoader{}
}

func (l *excelLoader) Open(_ context.Context, content []byte) (Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	return &excelWorkbook{file: f}, nil
}

type excelWorkbook struct {
	file *excelize.File
}

func (w *excelWorkbook) Sheets() []string {
	return w.file.GetSheetList()
}

func (w *excelWorkbook) Close() error {
	return w.file.Close()
}

// Table reads one sheet. The first row becomes the column headers, every
// following row a data row. Rows shorter than the widest row are padded
// with missing cells so each row has exactly one cell per column.
func (w *excelWorkbook) Table(_ context.Context, sheet string) (*domain.Table, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &domain.Table{}, nil
	}

	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	table := &domain.Table{Columns: normalizeHeaders(rows[0], width)}
	for i, row := range rows[1:] {
		cells := make([]domain.Cell, width)
		for j := 0; j < width; j++ {
			value := ""
			if j < len(row) {
				value = row[j]
			}
			cells[j] = w.typeCell(sheet, j+1, i+2, value)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// typeCell tags one cell with its value variant. The stored cell type
// decides text versus number where the sheet declares one; otherwise the
// rendered value is parsed, so a text cell holding "123" stays text while
// an untyped numeric cell becomes a number.
func (w *excelWorkbook) typeCell(sheet string, col, row int, value string) domain.Cell {
	if value == "" {
		return domain.Cell{Kind: domain.CellMissing}
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return domain.Cell{Kind: domain.CellText, Text: value}
	}

	cellType, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		cellType = excelize.CellTypeUnset
	}

	switch cellType {
	case excelize.CellTypeBool:
		return domain.Cell{Kind: domain.CellBool, Bool: strings.EqualFold(value, "TRUE")}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return domain.Cell{Kind: domain.CellText, Text: value}
	}

	if n, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return domain.Cell{Kind: domain.CellNumber, Number: n}
	}
	if t, ok := parseTime(value); ok {
		return domain.Cell{Kind: domain.CellTime, Time: t}
	}
	// A numeric cell whose display format (thousand separators, currency)
	// made the rendered value unparseable still counts by its raw value.
	if raw, err := w.file.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true}); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return domain.Cell{Kind: domain.CellNumber, Number: n}
		}
	}
	return domain.Cell{Kind: domain.CellText, Text: value}
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"01/02/2006",
	"1/2/2006",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"15:04:05",
	time.RFC3339,
}

func parseTime(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeHeaders gives every column position a unique, addressable
// name: blank headers become "Unnamed: {i}" by position, and repeated
// names get ".1", ".2", ... suffixes in occurrence order.
func normalizeHeaders(header []string, width int) []string {
	columns := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if next, ok := seen[name]; ok {
			base := name
			for k := next; ; k++ {
				candidate := fmt.Sprintf("%s.%d", base, k)
				if _, taken := seen[candidate]; !taken {
					seen[base] = k + 1
					name = candidate
					break
				}
			}
		}
		seen[name] = 1
		columns[i] = name
	}
	return columns
}
