package decoders

import (
	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"
)

const (
	codeInvalidConfiguration = "DEC_1000"
	codeLengthMismatch       = "DEC_1001"
	codeTimestampOverflow    = "DEC_1002"
)

// errInvalidConfiguration returns an error for a non-positive window length or an unusable unit.
func errInvalidConfiguration(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfiguration, msg, models.ErrInvalidConfiguration)
}

// errLengthMismatch returns an error when counts do not delimit the flat timestamp array.
func errLengthMismatch(msg string) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeLengthMismatch, msg, models.ErrLengthMismatch)
}

// errTimestampOverflow returns an error when an absolute timestamp does not fit in int64.
func errTimestampOverflow(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTimestampOverflow, msg, models.ErrInvalidConfiguration)
}
