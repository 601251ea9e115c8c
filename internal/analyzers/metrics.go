package analyzers

import (
	"click-rate/internal/shared/metrics"
)

// metricRateReportCreatedTotal counts stored rate reports.
//
// The outcome label is "complete" when every statistic is defined and "partial" when at least
// one statistic was undefined for the run (no windows, fewer than 2 tags or coincident tags).
var (
	metricRateReportCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "rate_report_created_total",
		},
		[]string{"outcome"},
	)

	// metricUndefinedStatisticTotal counts undefined statistics by name.
	metricUndefinedStatisticTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "undefined_statistic_total",
		},
		[]string{"statistic"},
	)
)

const (
	outcomeComplete = "complete"
	outcomePartial  = "partial"
)
