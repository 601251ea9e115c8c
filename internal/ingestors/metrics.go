package ingestors

import (
	"click-rate/internal/shared/metrics"
)

var (
	metricRunIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "run_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsReconstructedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDecoder,
			Name:      "events_reconstructed_total",
		},
	)

	// metricOutOfWindowTagsTotal counts in-window timestamps outside [0, window length).
	// They are decoded as is; a rising count usually means the declared unit mode is wrong.
	metricOutOfWindowTagsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDecoder,
			Name:      "out_of_window_tags_total",
		},
	)
)
