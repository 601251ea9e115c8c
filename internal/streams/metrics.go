package streams

import (
	"click-rate/internal/shared/metrics"
)

var (
	streamTimelineReconstructed = "timeline_reconstructed"

	metricTimelinePublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "timeline_published_total",
		},
		[]string{"stream_id"},
	)

	// metricTimelineConsumedTotal counts consumed events by outcome; error_code is empty on success.
	metricTimelineConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "timeline_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
