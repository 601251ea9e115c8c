package http

import (
	"fmt"
	"net/http"
	"time"

	"click-rate/internal/ingestors"
	"click-rate/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/palantir/pkg/safelong"
)

const paramRunID = "runID"

// TimelineResponse carries absolute timestamps as safe longs: JavaScript clients parse JSON
// numbers as float64, so every value must fit in 53 bits.
type TimelineResponse struct {
	RunID           string              `json:"runId"`
	WindowLengthNs  safelong.SafeLong   `json:"windowLengthNs"`
	Counts          []int64             `json:"counts"`
	TimestampsNs    []safelong.SafeLong `json:"timestampsNs"`
	ReconstructedAt time.Time           `json:"reconstructedAt"`
}

type timelineHandler struct {
	ingestionService ingestors.RunIngestionService
}

func NewTimelineHandler(ingestionService ingestors.RunIngestionService) AppHttpHandler {
	return &timelineHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes GET /runs/{runID}/timeline requests.
func (h *timelineHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	timeline, svcErr := h.ingestionService.GetTimeline(r.Context(), chi.URLParam(r, paramRunID))
	if svcErr != nil {
		return svcErr
	}

	response, err := newTimelineResponse(timeline)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, response)
}

func newTimelineResponse(timeline *models.AbsoluteTimeline) (*TimelineResponse, error) {
	windowLength, err := safelong.NewSafeLong(timeline.WindowLength)
	if err != nil {
		return nil, errUnsafeInteger(fmt.Sprintf("window length %d exceeds the JSON-safe integer range", timeline.WindowLength), err)
	}

	timestamps := make([]safelong.SafeLong, len(timeline.Timestamps))
	for i, ts := range timeline.Timestamps {
		timestamps[i], err = safelong.NewSafeLong(ts)
		if err != nil {
			return nil, errUnsafeInteger(fmt.Sprintf("timestamp %d at position %d exceeds the JSON-safe integer range", ts, i), err)
		}
	}

	return &TimelineResponse{
		RunID:           timeline.RunID,
		WindowLengthNs:  windowLength,
		Counts:          timeline.Counts,
		TimestampsNs:    timestamps,
		ReconstructedAt: timeline.ReconstructedAt,
	}, nil
}
