package planners

import (
	"errors"
	"math"
	"testing"

	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowPlanner_Plan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		totalDuration int64
		windowLength  int64
		expectedCount int
	}{
		{
			name:          "exact multiple",
			totalDuration: 8_000_000_000,
			windowLength:  1_000_000_000,
			expectedCount: 8,
		},
		{
			name:          "partial last window rounds up",
			totalDuration: 8_500_000_000,
			windowLength:  1_000_000_000,
			expectedCount: 9,
		},
		{
			name:          "duration shorter than one window",
			totalDuration: 1,
			windowLength:  1_000_000_000,
			expectedCount: 1,
		},
		{
			name:          "near max int64 does not overflow",
			totalDuration: math.MaxInt64,
			windowLength:  math.MaxInt64 / 2,
			expectedCount: 3,
		},
		{
			name:          "largest event capacity that fits int64",
			totalDuration: math.MaxInt64 / 64,
			windowLength:  1,
			expectedCount: math.MaxInt64 / 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			planner := NewWindowPlanner(64)
			plan, err := planner.Plan(tt.totalDuration, tt.windowLength)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, plan.WindowCount)
			assert.Equal(t, tt.totalDuration, plan.TotalDuration)
			assert.Equal(t, tt.windowLength, plan.WindowLength)
			assert.Equal(t, 64, plan.MaxTagsPerWindow)
			assert.Equal(t, int64(tt.expectedCount)*64, plan.EventCapacity)
		})
	}
}

func TestWindowPlanner_Plan_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		totalDuration int64
		windowLength  int64
		wantMessage   string
	}{
		{name: "zero duration", totalDuration: 0, windowLength: 1, wantMessage: "total duration"},
		{name: "negative duration", totalDuration: -5, windowLength: 1, wantMessage: "total duration"},
		{name: "zero window length", totalDuration: 10, windowLength: 0, wantMessage: "window length"},
		{name: "negative window length", totalDuration: 10, windowLength: -1, wantMessage: "window length"},
		{name: "event capacity overflows int64", totalDuration: math.MaxInt64, windowLength: 1, wantMessage: "event capacity"},
		{name: "event capacity one window past the int64 limit", totalDuration: math.MaxInt64/64 + 1, windowLength: 1, wantMessage: "overflows int64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := NewWindowPlanner(64).Plan(tt.totalDuration, tt.windowLength)

			assert.Nil(t, plan)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidConfiguration))
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "PLN_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
			assert.Contains(t, svcErr.Message, tt.wantMessage)
		})
	}
}

func TestWindowPlanner_PlanSeconds(t *testing.T) {
	t.Parallel()

	planner := NewWindowPlanner(64)

	plan, err := planner.PlanSeconds(8, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, 8, plan.WindowCount)
	assert.Equal(t, int64(8_000_000_000), plan.TotalDuration)

	plan, err = planner.PlanSeconds(0.3, 100_000_000)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.WindowCount, "0.3 s must not round up to 4 windows of 0.1 s")

	plan, err = planner.PlanSeconds(2.5, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.WindowCount)
}

func TestWindowPlanner_PlanSeconds_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	planner := NewWindowPlanner(64)
	for _, seconds := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := planner.PlanSeconds(seconds, 1_000_000_000)
		require.Error(t, err, "seconds=%v", seconds)
		assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
	}
}

func TestWindowPlanner_Plan_Windows(t *testing.T) {
	t.Parallel()

	plan, err := NewWindowPlanner(4).Plan(2_500, 1_000)
	require.NoError(t, err)

	windows := plan.Windows()
	require.Len(t, windows, 3)
	for i, w := range windows {
		assert.Equal(t, i, w.Index)
		assert.Equal(t, int64(i)*1_000, w.Offset())
	}
}
