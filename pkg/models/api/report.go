package api

// AnalyzeWorkbookRequest carries one workbook upload. Content is base64
// on the wire.
type AnalyzeWorkbookRequest struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

type ColumnStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// AnalyzeWorkbookResponse is the analysis result. SheetsProcessed holds
// one entry per sheet, annotated with the error for sheets that failed.
// ChartsCreated is reserved and always false. OutputFile and
// OutputFilename are present only when a report workbook was generated.
type AnalyzeWorkbookResponse struct {
	Filename        string                            `json:"filename"`
	SheetsProcessed []string                          `json:"sheets_processed"`
	Summary         map[string]map[string]ColumnStats `json:"summary"`
	ChartsCreated   bool                              `json:"charts_created"`
	OutputFile      []byte                            `json:"output_file,omitempty"`
	OutputFilename  string                            `json:"output_filename,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
