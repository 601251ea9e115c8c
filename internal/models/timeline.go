package models

import "time"

// AbsoluteTimeline is the reconstructed event stream of a run. Timestamps are nanoseconds since
// the start of window 0, in ascending window order and emission order within a window.
type AbsoluteTimeline struct {
	RunID           string    `json:"runId"`
	WindowLength    int64     `json:"windowLength"`
	Counts          []int64   `json:"counts"`
	Timestamps      []int64   `json:"timestamps"`
	ReconstructedAt time.Time `json:"reconstructedAt"`
}

// WindowCount returns the number of windows the run actually completed.
func (t *AbsoluteTimeline) WindowCount() int {
	return len(t.Counts)
}

// WindowLengthSeconds returns the window length in seconds.
func (t *AbsoluteTimeline) WindowLengthSeconds() float64 {
	return NanosToSeconds(t.WindowLength)
}
