package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
	"github.com/de-tools/sheet-metrics/pkg/services/analyzer"
	"github.com/de-tools/sheet-metrics/pkg/services/report"
	"github.com/de-tools/sheet-metrics/pkg/services/workbook"
)

// ErrEmptyContent marks a request that carried no workbook bytes.
var ErrEmptyContent = errors.New("no file content provided")

// ReportPrefix prefixes the generated report's filename.
const ReportPrefix = "processed_"

// Processor runs the full analysis of one workbook: decode, per-sheet
// statistics, and, when any sheet produced statistics, the report.
type Processor interface {
	ProcessWorkbook(ctx context.Context, filename string, content []byte) (*domain.AnalysisResult, error)
}

type workbookProcessor struct {
	loader   workbook.Loader
	analyzer analyzer.Analyzer
	builder  report.Builder
}

func New(loader workbook.Loader, analyzer analyzer.Analyzer, builder report.Builder) Processor {
	return &workbookProcessor{
		loader:   loader,
		analyzer: analyzer,
		builder:  builder,
	}
}

// NewDefault wires a Processor from the excelize-backed implementations.
func NewDefault() Processor {
	return New(workbook.NewLoader(), analyzer.New(), report.NewBuilder())
}

func (p *workbookProcessor) ProcessWorkbook(
	ctx context.Context,
	filename string,
	content []byte,
) (*domain.AnalysisResult, error) {
	if len(content) == 0 {
		return nil, ErrEmptyContent
	}

	wb, err := p.loader.Open(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", filename, err)
	}
	defer func() { _ = wb.Close() }()

	analysis, err := p.analyzer.Analyze(ctx, wb)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		Filename: filename,
		Outcomes: analysis.Outcomes,
		Summary:  analysis.Summary,
	}

	// The report exists exactly when the summary is non-empty.
	if len(analysis.Summary) > 0 {
		data, err := p.builder.Build(ctx, analysis)
		if err != nil {
			return nil, fmt.Errorf("failed to build report for %q: %w", filename, err)
		}
		result.Report = data
		result.ReportFilename = ReportPrefix + filename
	}

	return result, nil
}
