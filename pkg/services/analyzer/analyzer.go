package analyzer

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/sheet-metrics/pkg/models/domain"
	"github.com/de-tools/sheet-metrics/pkg/services/stats"
	"github.com/de-tools/sheet-metrics/pkg/services/workbook"
)

type Analyzer interface {
	Analyze(ctx context.Context, wb workbook.Workbook) (*domain.WorkbookAnalysis, error)
}

type sheetAnalyzer struct{}

func New() Analyzer {
	return &sheetAnalyzer{}
}

// Analyze walks every sheet in workbook order. A sheet that cannot be
// extracted is recorded with its error and skipped; the remaining sheets
// still run. A sheet enters the summary only when at least one of its
// numeric columns produced statistics.
func (a *sheetAnalyzer) Analyze(ctx context.Context, wb workbook.Workbook) (*domain.WorkbookAnalysis, error) {
	logger := zerolog.Ctx(ctx)
	analysis := &domain.WorkbookAnalysis{
		Summary: make(map[string]domain.SheetStats),
		Tables:  make(map[string]*domain.Table),
	}

	for _, sheet := range wb.Sheets() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := wb.Table(ctx, sheet)
		if err != nil {
			logger.Warn().Err(err).Str("sheet", sheet).Msg("sheet analysis failed")
			analysis.Outcomes = append(analysis.Outcomes, domain.SheetOutcome{
				Sheet: sheet,
				Err:   err.Error(),
			})
			continue
		}

		sheetStats := make(domain.SheetStats)
		for _, col := range workbook.NumericColumns(table) {
			if st, ok := stats.Describe(workbook.ColumnValues(table, col)); ok {
				sheetStats[col] = st
			}
		}

		analysis.Outcomes = append(analysis.Outcomes, domain.SheetOutcome{Sheet: sheet})
		analysis.Tables[sheet] = table
		if len(sheetStats) > 0 {
			analysis.Summary[sheet] = sheetStats
		}
	}

	return analysis, nil
}
