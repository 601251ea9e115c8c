package http

import (
	"bytes"
	"net/http"
	"strings"

	"click-rate/internal/analyzers"
	"click-rate/internal/ingestors"
	"click-rate/internal/models"
	"click-rate/internal/reporting"
	"click-rate/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
)

const (
	reportFormatJSON = "json"
	reportFormatText = "text"
)

type reportHandler struct {
	analysisService  analyzers.AnalysisService
	ingestionService ingestors.RunIngestionService
}

func NewReportHandler(analysisService analyzers.AnalysisService, ingestionService ingestors.RunIngestionService) AppHttpHandler {
	return &reportHandler{
		analysisService:  analysisService,
		ingestionService: ingestionService,
	}
}

// Handle processes GET /runs/{runID}/report requests. format=text renders the human report,
// which also needs the timeline for the per-window counts.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = reportFormatJSON
	}
	if format != reportFormatJSON && format != reportFormatText {
		return errUnsupportedFormat(format)
	}
	printTimestamps, err := queryBool(r, "timestamps")
	if err != nil {
		return err
	}

	runID := chi.URLParam(r, paramRunID)
	report, svcErr := h.analysisService.GetReport(r.Context(), runID)
	if svcErr != nil {
		return svcErr
	}

	if format == reportFormatJSON {
		return writeJSON(w, http.StatusOK, report)
	}
	return h.writeText(w, r, report, printTimestamps)
}

func (h *reportHandler) writeText(w http.ResponseWriter, r *http.Request, report *models.RateReport, printTimestamps bool) error {
	timeline, svcErr := h.ingestionService.GetTimeline(r.Context(), report.RunID)
	if svcErr != nil {
		// the report stands on its own; counts and timestamps are left out
		loggers.Ctx(r.Context()).Warn().
			Str(loggers.FieldRunID, report.RunID).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("timeline unavailable for text report")
		timeline = nil
	}

	var buf bytes.Buffer
	if err := reporting.WriteText(&buf, report, timeline, reporting.Options{PrintTimestamps: printTimestamps}); err != nil {
		return errResponseEncodeFailed(err)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return nil
}
