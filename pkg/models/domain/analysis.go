package domain

// ColumnStats holds the descriptive statistics of one numeric column.
type ColumnStats struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
	Count  int
}

// SheetStats maps a column name to its statistics. Only columns with at
// least one non-missing numeric value appear.
type SheetStats map[string]ColumnStats

// SheetOutcome records how one sheet fared during analysis. Err is empty
// on success.
type SheetOutcome struct {
	Sheet string
	Err   string
}

// WorkbookAnalysis is the analyzer's output for one workbook. Outcomes
// preserves workbook sheet order. Summary holds only sheets where at
// least one column produced statistics. Tables retains the extracted
// table of every successfully processed sheet.
type WorkbookAnalysis struct {
	Outcomes []SheetOutcome
	Summary  map[string]SheetStats
	Tables   map[string]*Table
}

// AnalysisResult is the pipeline's result record for one workbook.
// Report and ReportFilename are set only when a report was generated.
type AnalysisResult struct {
	Filename       string
	Outcomes       []SheetOutcome
	Summary        map[string]SheetStats
	Report         []byte
	ReportFilename string
}
