package ratestats

import (
	"math"
	"time"

	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"
)

//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	// Build computes the rate report of a reconstructed timeline. Undefined statistics are
	// recorded on the report; only configuration errors are returned.
	Build(timeline *models.AbsoluteTimeline) (*models.RateReport, error)
}

type reportBuilder struct {
	now func() time.Time
}

type ReportBuilderOption func(*reportBuilder)

// WithReportClock overrides the clock used to stamp reports.
func WithReportClock(now func() time.Time) ReportBuilderOption {
	return func(b *reportBuilder) {
		b.now = now
	}
}

func NewReportBuilder(opts ...ReportBuilderOption) ReportBuilder {
	b := &reportBuilder{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *reportBuilder) Build(timeline *models.AbsoluteTimeline) (*models.RateReport, error) {
	windowLengthSeconds := timeline.WindowLengthSeconds()

	perWindowRates, err := PerWindowRate(timeline.Counts, windowLengthSeconds)
	if err != nil {
		return nil, err
	}

	report := &models.RateReport{
		RunID:               timeline.RunID,
		WindowCount:         timeline.WindowCount(),
		WindowLengthSeconds: windowLengthSeconds,
		TotalEvents:         int64(len(timeline.Timestamps)),
		TotalElapsedSeconds: float64(timeline.WindowCount()) * windowLengthSeconds,
		PerWindowRates:      perWindowRates,
		CreatedAt:           b.now(),
	}

	aggregateRate, err := AggregateRate(timeline.Counts, windowLengthSeconds)
	switch {
	case err == nil:
		report.AggregateRate = &aggregateRate
	case isUndefined(err):
		report.Undefined = append(report.Undefined, models.UndefinedAggregateRate)
	default:
		return nil, err
	}

	intervals, err := InterClickIntervals(timeline.Timestamps)
	if err != nil {
		if !isUndefined(err) {
			return nil, err
		}
		report.Undefined = append(report.Undefined, models.UndefinedIntervals)
		return report, nil
	}

	stats, err := SummarizeIntervals(intervals)
	if err != nil {
		return nil, err
	}
	report.Intervals = &models.IntervalSummary{
		Count:  stats.Count,
		Median: stats.Median,
		Mean:   stats.Mean,
	}
	if rate := stats.MedianInstantaneousRate; !math.IsInf(rate, 0) && !math.IsNaN(rate) {
		report.Intervals.MedianInstantaneousRate = &rate
	} else {
		report.Undefined = append(report.Undefined, models.UndefinedMedianInstantaneousRate)
	}

	return report, nil
}

func isUndefined(err error) bool {
	svcErr, ok := svcerrors.AsServiceError(err)
	return ok && svcErr.IsUndefinedResult()
}
