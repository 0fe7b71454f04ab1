package report

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
	"github.com/de-tools/sheet-metrics/pkg/services/workbook"
)

const (
	// SummarySheet is the name of the statistics sheet in the report.
	SummarySheet = "Summary_Statistics"
	// OriginalPrefix prefixes the sheets carrying the source data.
	OriginalPrefix = "Original_"

	headerFillColor = "366092"
	headerFontColor = "FFFFFF"
	titleFontSize   = 14

	chartAnchor   = "H2"
	chartRowLimit = 20

	maxColumnWidth  = 50
	columnWidthPad  = 2
	blockSeparation = 2
)

var summaryHeader = []string{"Column", "Mean", "Median", "Std Dev", "Min", "Max", "Count"}

// Builder renders a workbook analysis into a styled report workbook.
type Builder interface {
	Build(ctx context.Context, analysis *domain.WorkbookAnalysis) ([]byte, error)
}

type excelBuilder struct{}

func NewBuilder() Builder {
	return &excelBuilder{}
}

// Build writes one summary block per analyzed sheet, then one
// Original_{name} sheet per analyzed sheet with the source data and a bar
// chart over its first numeric column. Chart creation and column sizing
// are best effort; sheet creation and serialization failures abort.
func (b *excelBuilder) Build(ctx context.Context, analysis *domain.WorkbookAnalysis) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: titleFontSize},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}

	order := summaryOrder(analysis)

	row := 1
	for _, sheet := range order {
		row = b.writeSummaryBlock(f, sheet, analysis, headerStyle, titleStyle, row)
	}

	for _, sheet := range order {
		if err := b.writeOriginalSheet(ctx, f, sheet, analysis.Tables[sheet], headerStyle); err != nil {
			return nil, err
		}
	}

	autoSizeColumns(f)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}
	return buf.Bytes(), nil
}

// summaryOrder lists the sheets with statistics in workbook sheet order.
func summaryOrder(analysis *domain.WorkbookAnalysis) []string {
	var order []string
	for _, outcome := range analysis.Outcomes {
		if outcome.Err != "" {
			continue
		}
		if _, ok := analysis.Summary[outcome.Sheet]; ok {
			order = append(order, outcome.Sheet)
		}
	}
	return order
}

func (b *excelBuilder) writeSummaryBlock(
	f *excelize.File,
	sheet string,
	analysis *domain.WorkbookAnalysis,
	headerStyle, titleStyle, row int,
) int {
	title, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(SummarySheet, title, "Sheet: "+sheet)
	_ = f.SetCellStyle(SummarySheet, title, title, titleStyle)
	row++

	for i, label := range summaryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(SummarySheet, cell, label)
		_ = f.SetCellStyle(SummarySheet, cell, cell, headerStyle)
	}
	row++

	sheetStats := analysis.Summary[sheet]
	for _, col := range workbook.NumericColumns(analysis.Tables[sheet]) {
		st, ok := sheetStats[col]
		if !ok {
			continue
		}
		fields := []any{
			col,
			round2(st.Mean),
			round2(st.Median),
			round2(st.Std),
			round2(st.Min),
			round2(st.Max),
			st.Count,
		}
		for i, v := range fields {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(SummarySheet, cell, v)
		}
		row++
	}

	return row + blockSeparation
}

// writeOriginalSheet reproduces a source table on its own sheet: styled
// header row, then the data verbatim from row 2.
func (b *excelBuilder) writeOriginalSheet(
	ctx context.Context,
	f *excelize.File,
	sheet string,
	table *domain.Table,
	headerStyle int,
) error {
	name := OriginalPrefix + sheet
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	for i, col := range table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(name, cell, col)
		_ = f.SetCellStyle(name, cell, cell, headerStyle)
	}
	for r, cells := range table.Rows {
		for c, cell := range cells {
			if cell.Kind == domain.CellMissing {
				continue
			}
			axis, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(name, axis, cell.Value())
		}
	}

	b.addChart(ctx, f, name, sheet, table)
	return nil
}

// addChart plots the first numeric column as a bar chart. Sheets with no
// numeric column or fewer than two data rows get no chart, and a chart
// that fails to render leaves the sheet without one.
func (b *excelBuilder) addChart(ctx context.Context, f *excelize.File, name, sheet string, table *domain.Table) {
	numeric := workbook.NumericColumns(table)
	if len(numeric) == 0 || len(table.Rows) < 2 {
		return
	}

	col, err := excelize.ColumnNumberToName(table.ColumnIndex(numeric[0]) + 1)
	if err != nil {
		return
	}
	endRow := min(chartRowLimit, len(table.Rows)+1)
	values := fmt.Sprintf("%s!$%s$2:$%s$%d", quoteSheetName(name), col, col, endRow)

	err = f.AddChart(name, chartAnchor, &excelize.Chart{
		Type:   excelize.Col,
		Series: []excelize.ChartSeries{{Values: values}},
		Title:  []excelize.RichTextRun{{Text: "Data Overview - " + sheet}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Records"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Values"}}},
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("sheet", name).Msg("could not create chart")
	}
}

// autoSizeColumns widens every column to its longest rendered value plus
// padding, capped at maxColumnWidth. Sheets or cells that cannot be
// measured keep their default width.
func autoSizeColumns(f *excelize.File) {
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}

		count := 0
		for _, row := range rows {
			if len(row) > count {
				count = len(row)
			}
		}

		widths := make([]int, count)
		for _, row := range rows {
			for c, value := range row {
				if n := utf8.RuneCountInString(value); n > widths[c] {
					widths[c] = n
				}
			}
		}
		for c, w := range widths {
			col, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				continue
			}
			_ = f.SetColWidth(sheet, col, col, float64(min(w+columnWidthPad, maxColumnWidth)))
		}
	}
}

func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
