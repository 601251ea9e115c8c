package models

import "errors"

// Error kinds of the reconstruction and rate-analysis engine. Service errors carry one of
// these as their cause so callers can classify failures with errors.Is.
var (
	// ErrInvalidConfiguration: non-positive duration, window length or cycle multiplier.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrLengthMismatch: the count array does not delimit the flat timestamp array.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrEmptyRun: a statistic is undefined for the run (zero windows or < 2 timestamps).
	ErrEmptyRun = errors.New("empty run")
)
