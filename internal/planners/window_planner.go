package planners

import (
	"fmt"
	"math"

	"click-rate/internal/models"
)

//go:generate mockgen -source=window_planner.go -destination=./mocks/window_planner_mock.go -package=mocks
type WindowPlanner interface {
	// Plan returns ceil(totalDuration / windowLength) windows. Both inputs share one time unit.
	Plan(totalDuration, windowLength int64) (*models.WindowPlan, error)
	// PlanSeconds plans a duration given in seconds against a window length in nanoseconds.
	PlanSeconds(totalSeconds float64, windowLength int64) (*models.WindowPlan, error)
}

type windowPlanner struct {
	maxTagsPerWindow int
}

// NewWindowPlanner creates a planner; maxTagsPerWindow bounds the per-window tag buffer of the
// acquisition program and is only used to report the plan's event capacity.
func NewWindowPlanner(maxTagsPerWindow int) WindowPlanner {
	return &windowPlanner{maxTagsPerWindow: maxTagsPerWindow}
}

func (p *windowPlanner) Plan(totalDuration, windowLength int64) (*models.WindowPlan, error) {
	if totalDuration <= 0 {
		return nil, errInvalidConfiguration(fmt.Sprintf("total duration must be positive, got %d", totalDuration))
	}
	if windowLength <= 0 {
		return nil, errInvalidConfiguration(fmt.Sprintf("window length must be positive, got %d", windowLength))
	}

	// ceil without the (a+b-1)/b form, which overflows near MaxInt64
	windowCount := totalDuration / windowLength
	if totalDuration%windowLength != 0 {
		windowCount++
	}

	if windowCount > math.MaxInt {
		return nil, errInvalidConfiguration(fmt.Sprintf("window count %d exceeds the platform int range", windowCount))
	}
	if p.maxTagsPerWindow > 0 && windowCount > math.MaxInt64/int64(p.maxTagsPerWindow) {
		return nil, errInvalidConfiguration(fmt.Sprintf("event capacity of %d windows x %d tags overflows int64", windowCount, p.maxTagsPerWindow))
	}

	return &models.WindowPlan{
		TotalDuration:    totalDuration,
		WindowLength:     windowLength,
		WindowCount:      int(windowCount),
		MaxTagsPerWindow: p.maxTagsPerWindow,
		EventCapacity:    windowCount * int64(p.maxTagsPerWindow),
	}, nil
}

func (p *windowPlanner) PlanSeconds(totalSeconds float64, windowLength int64) (*models.WindowPlan, error) {
	if math.IsNaN(totalSeconds) || totalSeconds <= 0 {
		return nil, errInvalidConfiguration(fmt.Sprintf("total duration must be positive, got %gs", totalSeconds))
	}
	totalNs := math.Round(totalSeconds * models.NanosPerSecond)
	if totalNs >= math.MaxInt64 {
		return nil, errInvalidConfiguration(fmt.Sprintf("total duration %gs exceeds the nanosecond range", totalSeconds))
	}

	return p.Plan(int64(totalNs), windowLength)
}
