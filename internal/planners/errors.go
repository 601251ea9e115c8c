package planners

import (
	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"
)

const (
	codeInvalidConfiguration = "PLN_1000"
)

// errInvalidConfiguration returns an error for non-positive plan inputs.
func errInvalidConfiguration(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfiguration, msg, models.ErrInvalidConfiguration)
}
