package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/sheet-metrics/pkg/adapters"
	"github.com/de-tools/sheet-metrics/pkg/models/api"
	"github.com/de-tools/sheet-metrics/pkg/services/pipeline"
)

const defaultFilename = "input.xlsx"

type Handler struct {
	processor pipeline.Processor
}

func NewHandler(processor pipeline.Processor) *Handler {
	return &Handler{processor: processor}
}

// AnalyzeWorkbook accepts a workbook upload and responds with per-sheet
// statistics plus, when any sheet produced them, the report workbook.
func (h *Handler) AnalyzeWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeWorkbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Error: "invalid request body"}, logger)
		return
	}
	if req.Filename == "" {
		req.Filename = defaultFilename
	}
	if len(req.Content) == 0 {
		writeJSON(w, http.StatusBadRequest, api.Error{Error: "no file content provided"}, logger)
		return
	}

	result, err := h.processor.ProcessWorkbook(ctx, req.Filename, req.Content)
	if err != nil {
		logger.Error().
			Err(err).
			Str("filename", req.Filename).
			Msg("workbook processing failed")

		status := http.StatusInternalServerError
		if errors.Is(err, pipeline.ErrEmptyContent) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, api.Error{Error: err.Error()}, logger)
		return
	}

	writeJSON(w, http.StatusOK, adapters.MapAnalysisResultDomainToApi(result), logger)
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
