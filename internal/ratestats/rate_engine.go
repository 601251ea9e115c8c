package ratestats

import (
	"fmt"
	"math"
	"slices"

	"click-rate/internal/models"

	"gonum.org/v1/gonum/stat"
)

// IntervalStats summarizes inter-click intervals in seconds.
// MedianInstantaneousRate is median(1/interval) and is +Inf when at least half the intervals are zero.
type IntervalStats struct {
	Count                   int
	Median                  float64
	Mean                    float64
	MedianInstantaneousRate float64
}

// PerWindowRate returns counts[k] / windowLengthSeconds for every window.
func PerWindowRate(counts []int64, windowLengthSeconds float64) ([]float64, error) {
	if err := validateWindowLength(windowLengthSeconds); err != nil {
		return nil, err
	}

	rates := make([]float64, len(counts))
	for k, c := range counts {
		rates[k] = float64(c) / windowLengthSeconds
	}
	return rates, nil
}

// AggregateRate returns sum(counts) / (len(counts) * windowLengthSeconds).
// A run without windows yields NaN together with an EmptyRun error.
func AggregateRate(counts []int64, windowLengthSeconds float64) (float64, error) {
	if err := validateWindowLength(windowLengthSeconds); err != nil {
		return math.NaN(), err
	}
	if len(counts) == 0 {
		return math.NaN(), errEmptyRunAggregate()
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return float64(total) / (float64(len(counts)) * windowLengthSeconds), nil
}

// InterClickIntervals sorts a copy of the absolute stream and returns successive differences in seconds.
func InterClickIntervals(absolute []int64) ([]float64, error) {
	if len(absolute) < 2 {
		return nil, errEmptyRunIntervals(fmt.Sprintf("inter-click intervals need at least 2 timestamps, got %d", len(absolute)))
	}

	sorted := slices.Clone(absolute)
	slices.Sort(sorted)

	intervals := make([]float64, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		intervals[i-1] = models.NanosToSeconds(sorted[i] - sorted[i-1])
	}
	return intervals, nil
}

// SummarizeIntervals computes the median, the mean and the median instantaneous rate of intervals.
func SummarizeIntervals(intervals []float64) (*IntervalStats, error) {
	if len(intervals) == 0 {
		return nil, errEmptyRunIntervals("interval summary needs at least 1 interval")
	}

	reciprocals := make([]float64, len(intervals))
	for i, v := range intervals {
		reciprocals[i] = 1 / v
	}

	return &IntervalStats{
		Count:                   len(intervals),
		Median:                  median(intervals),
		Mean:                    stat.Mean(intervals, nil),
		MedianInstantaneousRate: median(reciprocals),
	}, nil
}

// median averages the two middle values of an even-length sample. It does not modify values.
func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func validateWindowLength(windowLengthSeconds float64) error {
	if !(windowLengthSeconds > 0) || math.IsInf(windowLengthSeconds, 1) {
		return errInvalidConfiguration(fmt.Sprintf("window length must be a positive number of seconds, got %v", windowLengthSeconds))
	}
	return nil
}
