package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
)

type TableConfig struct {
	ColumnWidth int
	ValueWidth  int
	CountWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ColumnWidth: 30,
		ValueWidth:  12,
		CountWidth:  7,
	}
}

// Reporter renders analysis results as text tables on the console.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type sheetView struct {
	Name    string
	Err     string
	Columns []columnView
}

type columnView struct {
	Name  string
	Stats domain.ColumnStats
}

type resultView struct {
	Filename       string
	ReportFilename string
	Sheets         []sheetView
}

func (c *Reporter) Handle(result *domain.AnalysisResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, mean, median, std, minV, maxV, count any) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s | %*s | %*s | %*s |",
				c.config.ColumnWidth, name,
				c.config.ValueWidth, formatValue(mean),
				c.config.ValueWidth, formatValue(median),
				c.config.ValueWidth, formatValue(std),
				c.config.ValueWidth, formatValue(minV),
				c.config.ValueWidth, formatValue(maxV),
				c.config.CountWidth, formatValue(count))
		},
		"separator": func() string {
			value := strings.Repeat("-", c.config.ValueWidth+2)
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.ColumnWidth+2),
				value, value, value, value, value,
				strings.Repeat("-", c.config.CountWidth+2))
		},
	}

	tmpl := `
{{.Filename}}

{{range .Sheets}}
=== {{.Name}} ===
{{if .Err}}ERROR: {{.Err}}
{{else if not .Columns}}No numeric columns.
{{else}}{{separator}}
{{formatRow "Column" "Mean" "Median" "Std Dev" "Min" "Max" "Count"}}
{{separator}}
{{range .Columns}}{{formatRow .Name .Stats.Mean .Stats.Median .Stats.Std .Stats.Min .Stats.Max .Stats.Count}}
{{end}}{{separator}}
{{end}}{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, buildView(result))
}

// buildView flattens the result maps into ordered slices; sheets keep
// workbook order, columns are listed alphabetically.
func buildView(result *domain.AnalysisResult) resultView {
	view := resultView{
		Filename:       result.Filename,
		ReportFilename: result.ReportFilename,
	}

	for _, outcome := range result.Outcomes {
		sheet := sheetView{Name: outcome.Sheet, Err: outcome.Err}

		if stats, ok := result.Summary[outcome.Sheet]; ok {
			columns := make([]string, 0, len(stats))
			for col := range stats {
				columns = append(columns, col)
			}
			sort.Strings(columns)
			for _, col := range columns {
				sheet.Columns = append(sheet.Columns, columnView{Name: col, Stats: stats[col]})
			}
		}

		view.Sheets = append(view.Sheets, sheet)
	}

	return view
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprint(v)
}
