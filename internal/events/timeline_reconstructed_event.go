package events

import "time"

// TimelineReconstructedEvent announces that the absolute timeline of a run has been stored and
// is ready for rate analysis. The timeline itself stays in the timeline store; the event only
// carries its identity and size.
//
// Example JSON:
//
//	{
//	  "runId": "01JAB9Y4ZP7X6Q2M3N8K5T1V0C",
//	  "windowCount": 8,
//	  "eventCount": 412,
//	  "reconstructedAt": "2026-10-19T09:00:00Z"
//	}
type TimelineReconstructedEvent struct {
	RunID           string    `json:"runId"`
	WindowCount     int       `json:"windowCount"`
	EventCount      int       `json:"eventCount"`
	ReconstructedAt time.Time `json:"reconstructedAt"`
}
