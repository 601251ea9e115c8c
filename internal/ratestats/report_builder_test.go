package ratestats

import (
	"testing"
	"time"

	"click-rate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newTestBuilder() ReportBuilder {
	return NewReportBuilder(WithReportClock(func() time.Time { return fixedNow }))
}

func TestReportBuilder_Build(t *testing.T) {
	t.Parallel()

	timeline := &models.AbsoluteTimeline{
		RunID:        "run-1",
		WindowLength: 1_000_000_000,
		Counts:       []int64{2, 0, 1},
		Timestamps:   []int64{0, 1_000_000_000, 2_000_000_000},
	}

	report, err := newTestBuilder().Build(timeline)

	require.NoError(t, err)
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 3, report.WindowCount)
	assert.Equal(t, 1.0, report.WindowLengthSeconds)
	assert.Equal(t, int64(3), report.TotalEvents)
	assert.Equal(t, 3.0, report.TotalElapsedSeconds)
	assert.Equal(t, []float64{2, 0, 1}, report.PerWindowRates)
	require.NotNil(t, report.AggregateRate)
	assert.Equal(t, 1.0, *report.AggregateRate)
	require.NotNil(t, report.Intervals)
	assert.Equal(t, 2, report.Intervals.Count)
	assert.Equal(t, 1.0, report.Intervals.Median)
	assert.Equal(t, 1.0, report.Intervals.Mean)
	require.NotNil(t, report.Intervals.MedianInstantaneousRate)
	assert.Equal(t, 1.0, *report.Intervals.MedianInstantaneousRate)
	assert.Empty(t, report.Undefined)
	assert.Equal(t, fixedNow, report.CreatedAt)
}

func TestReportBuilder_Build_EmptyRun(t *testing.T) {
	t.Parallel()

	timeline := &models.AbsoluteTimeline{RunID: "run-empty", WindowLength: 1_000_000_000, Counts: []int64{}, Timestamps: []int64{}}

	report, err := newTestBuilder().Build(timeline)

	require.NoError(t, err, "an empty run is reported, not failed")
	assert.Equal(t, 0, report.WindowCount)
	assert.Empty(t, report.PerWindowRates)
	assert.Nil(t, report.AggregateRate)
	assert.Nil(t, report.Intervals)
	assert.Equal(t, []string{models.UndefinedAggregateRate, models.UndefinedIntervals}, report.Undefined)
	assert.True(t, report.IsUndefined(models.UndefinedAggregateRate))
}

func TestReportBuilder_Build_SingleEvent(t *testing.T) {
	t.Parallel()

	timeline := &models.AbsoluteTimeline{RunID: "run-single", WindowLength: 500_000_000, Counts: []int64{0, 1}, Timestamps: []int64{600_000_000}}

	report, err := newTestBuilder().Build(timeline)

	require.NoError(t, err)
	require.NotNil(t, report.AggregateRate)
	assert.Equal(t, 1.0, *report.AggregateRate)
	assert.Equal(t, []float64{0, 2}, report.PerWindowRates)
	assert.Nil(t, report.Intervals)
	assert.Equal(t, []string{models.UndefinedIntervals}, report.Undefined)
}

func TestReportBuilder_Build_CoincidentTags(t *testing.T) {
	t.Parallel()

	timeline := &models.AbsoluteTimeline{RunID: "run-dup", WindowLength: 1_000_000_000, Counts: []int64{3}, Timestamps: []int64{5, 5, 5}}

	report, err := newTestBuilder().Build(timeline)

	require.NoError(t, err)
	require.NotNil(t, report.Intervals)
	assert.Equal(t, 0.0, report.Intervals.Median)
	assert.Nil(t, report.Intervals.MedianInstantaneousRate)
	assert.Equal(t, []string{models.UndefinedMedianInstantaneousRate}, report.Undefined)
}

func TestReportBuilder_Build_InvalidWindowLength(t *testing.T) {
	t.Parallel()

	timeline := &models.AbsoluteTimeline{RunID: "run-bad", WindowLength: 0, Counts: []int64{1}, Timestamps: []int64{1}}

	report, err := newTestBuilder().Build(timeline)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
}
