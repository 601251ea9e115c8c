package models

import "time"

// Undefined statistic names reported in RateReport.Undefined.
const (
	UndefinedAggregateRate           = "aggregate_rate"
	UndefinedIntervals               = "intervals"
	UndefinedMedianInstantaneousRate = "median_instantaneous_rate"
)

// RateReport is the result of analyzing one run. Statistics that are undefined for the run are
// left nil and listed in Undefined.
//
// Example JSON:
//
//	{
//	  "runId": "01JAB9Y4ZP7X6Q2M3N8K5T1V0C",
//	  "windowCount": 3,
//	  "windowLengthSeconds": 1,
//	  "totalEvents": 3,
//	  "totalElapsedSeconds": 3,
//	  "perWindowRatesHz": [1, 1, 1],
//	  "aggregateRateHz": 1,
//	  "intervals": {
//	    "count": 2,
//	    "medianSeconds": 1,
//	    "meanSeconds": 1,
//	    "medianInstantaneousRateHz": 1
//	  },
//	  "createdAt": "2026-10-19T09:00:00Z"
//	}
type RateReport struct {
	RunID               string           `json:"runId"`
	WindowCount         int              `json:"windowCount"`
	WindowLengthSeconds float64          `json:"windowLengthSeconds"`
	TotalEvents         int64            `json:"totalEvents"`
	TotalElapsedSeconds float64          `json:"totalElapsedSeconds"`
	PerWindowRates      []float64        `json:"perWindowRatesHz"`
	AggregateRate       *float64         `json:"aggregateRateHz"`
	Intervals           *IntervalSummary `json:"intervals"`
	Undefined           []string         `json:"undefined,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// IntervalSummary holds inter-click interval statistics.
// MedianInstantaneousRate is the median of 1/interval, not 1/median(interval).
type IntervalSummary struct {
	Count                   int      `json:"count"`
	Median                  float64  `json:"medianSeconds"`
	Mean                    float64  `json:"meanSeconds"`
	MedianInstantaneousRate *float64 `json:"medianInstantaneousRateHz"`
}

// IsUndefined reports whether the named statistic was undefined for the run.
func (r *RateReport) IsUndefined(name string) bool {
	for _, u := range r.Undefined {
		if u == name {
			return true
		}
	}
	return false
}
