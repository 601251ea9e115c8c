package http

import (
	"net/http"

	"click-rate/internal/ingestors"
)

// IngestRunResponse is returned once a run is stored and queued for analysis.
type IngestRunResponse struct {
	RunID            string `json:"runId"`
	WindowCount      int    `json:"windowCount"`
	EventCount       int    `json:"eventCount"`
	OutOfWindowCount int    `json:"outOfWindowCount"`
}

type ingestRunHandler struct {
	ingestionService ingestors.RunIngestionService
}

func NewIngestRunHandler(ingestionService ingestors.RunIngestionService) AppHttpHandler {
	return &ingestRunHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /runs requests.
func (h *ingestRunHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestRun(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, IngestRunResponse{
		RunID:            result.RunID,
		WindowCount:      result.WindowCount,
		EventCount:       result.EventCount,
		OutOfWindowCount: result.OutOfWindowCount,
	})
}
