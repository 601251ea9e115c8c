package models

import (
	"fmt"
	"strings"
)

// NanosPerSecond converts the native time unit (nanoseconds) to seconds.
const NanosPerSecond = 1e9

type UnitMode string

const (
	// UnitNative means tags are already in nanoseconds.
	UnitNative UnitMode = "native"
	// UnitClockCycles means tags are clock-cycle counts that need a multiplier.
	UnitClockCycles UnitMode = "clock_cycles"
)

// NewUnitModeFromString parses a unit mode; an empty string selects UnitNative.
func NewUnitModeFromString(s string) (UnitMode, error) {
	switch UnitMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", UnitNative:
		return UnitNative, nil
	case UnitClockCycles:
		return UnitClockCycles, nil
	default:
		return "", fmt.Errorf("invalid unit mode: %q", s)
	}
}

// TagUnit declares the unit of in-window timestamps.
// CycleMultiplier is the clock period in nanoseconds and is only used in UnitClockCycles mode.
type TagUnit struct {
	Mode            UnitMode `json:"mode"`
	CycleMultiplier int64    `json:"cycleMultiplier,omitempty"`
}

// NativeUnit returns the TagUnit for timestamps that are already in nanoseconds.
func NativeUnit() TagUnit {
	return TagUnit{Mode: UnitNative}
}

// ClockCycleUnit returns the TagUnit for clock-cycle timestamps with the given period.
func ClockCycleUnit(periodNs int64) TagUnit {
	return TagUnit{Mode: UnitClockCycles, CycleMultiplier: periodNs}
}

// NanosToSeconds converts a native-unit duration to seconds.
func NanosToSeconds(ns int64) float64 {
	return float64(ns) / NanosPerSecond
}
