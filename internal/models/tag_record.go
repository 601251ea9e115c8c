package models

import "math"

// RawTagRecord is the raw output of one acquisition run.
//
// Counts holds one entry per completed window. Timestamps is the concatenation, in window
// order, of each window's in-window timestamps as emitted by the acquisition program.
// A well-formed record satisfies sum(Counts) == len(Timestamps).
//
// Example JSON:
//
//	{
//	  "runId": "01JAB9Y4ZP7X6Q2M3N8K5T1V0C",
//	  "counts": [2, 0, 1],
//	  "timestamps": [10, 20, 5],
//	  "windowLength": 1000000000,
//	  "unit": {"mode": "native"}
//	}
type RawTagRecord struct {
	RunID        string  `json:"runId"`
	Counts       []int64 `json:"counts"`
	Timestamps   []int64 `json:"timestamps"`
	WindowLength int64   `json:"windowLength"`
	Unit         TagUnit `json:"unit"`
}

// TotalEvents returns sum(Counts). ok is false when a count is negative or the sum overflows
// int64; such a record cannot delimit any timestamp array.
func (r *RawTagRecord) TotalEvents() (total int64, ok bool) {
	for _, c := range r.Counts {
		if c < 0 || c > math.MaxInt64-total {
			return 0, false
		}
		total += c
	}
	return total, true
}
