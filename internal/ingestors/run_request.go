package ingestors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"click-rate/internal/models"
	"click-rate/internal/shared/configs"
	"click-rate/internal/shared/validators"
)

const (
	FormatJSON = "json"

	// 16 MiB holds roughly a million timestamps.
	maxRunBytes = 16 * 1024 * 1024
)

// RunRequest is the payload of one acquisition run. Omitted acquisition settings fall back to
// RunDefaults.
//
// Example JSON:
//
//	{
//	  "counts": [2, 0, 1],
//	  "timestamps": [10, 20, 5],
//	  "windowLengthNs": 1000000000,
//	  "unitMode": "native"
//	}
type RunRequest struct {
	Counts         []int64 `json:"counts" validate:"required"`
	Timestamps     []int64 `json:"timestamps" validate:"required"`
	WindowLengthNs *int64  `json:"windowLengthNs"`
	UnitMode       string  `json:"unitMode"`
	CyclePeriodNs  *int64  `json:"cyclePeriodNs"`
}

// RunDefaults are the acquisition settings applied to requests that omit them.
type RunDefaults struct {
	WindowLength     int64
	Unit             models.TagUnit
	ClockPeriodNs    int64
	MaxTagsPerWindow int
}

// NewRunDefaults derives run defaults from the acquisition config.
func NewRunDefaults(cfg configs.AcquisitionConfig) RunDefaults {
	unit := models.NativeUnit()
	if cfg.TagsAreClockCycles {
		unit = models.ClockCycleUnit(cfg.ClockPeriodNs)
	}
	return RunDefaults{
		WindowLength:     cfg.WindowLengthNs,
		Unit:             unit,
		ClockPeriodNs:    cfg.ClockPeriodNs,
		MaxTagsPerWindow: cfg.MaxTagsPerWindow,
	}
}

// DecodeRunRequest reads and validates a run payload.
func DecodeRunRequest(validate *validators.Validate, format string, r io.Reader) (*RunRequest, error) {
	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxRunBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxRunBytes {
		return nil, errValidationFailed("run too large: must be <= 16MB", nil)
	}

	var req RunRequest
	if err := json.Unmarshal(buf, &req); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	if err := validate.Struct(&req); err != nil {
		return nil, errValidationFailed(formatValidationError(err), err)
	}
	return &req, nil
}

// Record resolves defaults and returns the raw tag record of the run.
func (req *RunRequest) Record(runID string, defaults RunDefaults) (*models.RawTagRecord, error) {
	windowLength := defaults.WindowLength
	if req.WindowLengthNs != nil {
		windowLength = *req.WindowLengthNs
	}

	unit := defaults.Unit
	if req.UnitMode != "" {
		mode, err := models.NewUnitModeFromString(req.UnitMode)
		if err != nil {
			return nil, errInvalidConfiguration(err.Error())
		}
		unit = models.TagUnit{Mode: mode}
		if mode == models.UnitClockCycles {
			unit.CycleMultiplier = defaults.ClockPeriodNs
		}
	}
	if req.CyclePeriodNs != nil {
		if unit.Mode != models.UnitClockCycles {
			return nil, errInvalidConfiguration("cyclePeriodNs requires unitMode clock_cycles")
		}
		unit.CycleMultiplier = *req.CyclePeriodNs
	}

	return &models.RawTagRecord{
		RunID:        runID,
		Counts:       req.Counts,
		Timestamps:   req.Timestamps,
		WindowLength: windowLength,
		Unit:         unit,
	}, nil
}

func formatValidationError(err error) string {
	var validationErrs validators.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
