package http

import (
	"net/http"

	"click-rate/internal/planners"
)

type planHandler struct {
	windowPlanner       planners.WindowPlanner
	defaultWindowLength int64
}

func NewPlanHandler(windowPlanner planners.WindowPlanner, defaultWindowLength int64) AppHttpHandler {
	return &planHandler{
		windowPlanner:       windowPlanner,
		defaultWindowLength: defaultWindowLength,
	}
}

// Handle processes GET /plans requests. The duration is given either as totalDurationNs or
// as totalDurationS; windowLengthNs falls back to the configured window length.
func (h *planHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	windowLength, ok, err := queryInt64(r, "windowLengthNs")
	if err != nil {
		return err
	}
	if !ok {
		windowLength = h.defaultWindowLength
	}

	totalNs, hasNs, err := queryInt64(r, "totalDurationNs")
	if err != nil {
		return err
	}
	totalS, hasS, err := queryFloat64(r, "totalDurationS")
	if err != nil {
		return err
	}

	switch {
	case hasNs && hasS:
		return errMissingQueryParam("only one of totalDurationNs and totalDurationS may be set")
	case hasNs:
		plan, err := h.windowPlanner.Plan(totalNs, windowLength)
		if err != nil {
			return err
		}
		return writeJSON(w, http.StatusOK, plan)
	case hasS:
		plan, err := h.windowPlanner.PlanSeconds(totalS, windowLength)
		if err != nil {
			return err
		}
		return writeJSON(w, http.StatusOK, plan)
	default:
		return errMissingQueryParam("totalDurationNs or totalDurationS is required")
	}
}
