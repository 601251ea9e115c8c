package ratestats

import (
	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"
)

const (
	codeInvalidConfiguration = "RTS_1000"
	codeEmptyRunAggregate    = "RTS_2000"
	codeEmptyRunIntervals    = "RTS_2001"
)

// errInvalidConfiguration returns an error for a non-positive or non-finite window length.
func errInvalidConfiguration(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfiguration, msg, models.ErrInvalidConfiguration)
}

// errEmptyRunAggregate marks the aggregate rate of a run without windows as undefined.
func errEmptyRunAggregate() *svcerrors.ServiceError {
	return svcerrors.NewUndefinedResultError(codeEmptyRunAggregate, "aggregate rate is undefined for a run without windows", models.ErrEmptyRun)
}

// errEmptyRunIntervals marks interval statistics as undefined.
func errEmptyRunIntervals(msg string) *svcerrors.ServiceError {
	return svcerrors.NewUndefinedResultError(codeEmptyRunIntervals, msg, models.ErrEmptyRun)
}
