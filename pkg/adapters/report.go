package adapters

import (
	"fmt"

	"github.com/de-tools/sheet-metrics/pkg/models/api"
	"github.com/de-tools/sheet-metrics/pkg/models/domain"
)

func MapAnalysisResultDomainToApi(result *domain.AnalysisResult) api.AnalyzeWorkbookResponse {
	resp := api.AnalyzeWorkbookResponse{
		Filename:        result.Filename,
		SheetsProcessed: make([]string, 0, len(result.Outcomes)),
		Summary:         make(map[string]map[string]api.ColumnStats, len(result.Summary)),
		OutputFile:      result.Report,
		OutputFilename:  result.ReportFilename,
	}

	for _, outcome := range result.Outcomes {
		resp.SheetsProcessed = append(resp.SheetsProcessed, MapSheetOutcomeDomainToApi(outcome))
	}
	for sheet, stats := range result.Summary {
		resp.Summary[sheet] = MapSheetStatsDomainToApi(stats)
	}

	return resp
}

// MapSheetOutcomeDomainToApi renders an outcome as its processed-sheets
// entry: the bare sheet name on success, annotated on failure.
func MapSheetOutcomeDomainToApi(outcome domain.SheetOutcome) string {
	if outcome.Err != "" {
		return fmt.Sprintf("%s (ERROR: %s)", outcome.Sheet, outcome.Err)
	}
	return outcome.Sheet
}

func MapSheetStatsDomainToApi(stats domain.SheetStats) map[string]api.ColumnStats {
	mapped := make(map[string]api.ColumnStats, len(stats))
	for col, st := range stats {
		mapped[col] = api.ColumnStats{
			Mean:   st.Mean,
			Median: st.Median,
			Std:    st.Std,
			Min:    st.Min,
			Max:    st.Max,
			Count:  st.Count,
		}
	}
	return mapped
}
