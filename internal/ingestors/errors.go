package ingestors

import (
	"fmt"

	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"
)

// RunIngestionService errors
const (
	codeValidationFailed     = "ING_1000"
	codeRunAlreadyIngested   = "ING_1001"
	codeInvalidConfiguration = "ING_1002"
	codeTimelineNotFound     = "ING_1003"

	codeInternalTimelineStoreFailed     = "ING_9000"
	codeInternalTimelinePublisherFailed = "ING_9001"
	codeInternalDecoderFailed           = "ING_9002"
)

// errValidationFailed returns an error for a malformed run payload.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errRunAlreadyIngested returns an error when a run ID has already been ingested.
func errRunAlreadyIngested(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRunAlreadyIngested, fmt.Sprintf("run %q already ingested", runID), cause)
}

// errInvalidConfiguration returns an error for an unusable acquisition setting in the payload.
func errInvalidConfiguration(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfiguration, msg, models.ErrInvalidConfiguration)
}

// errTimelineNotFound returns an error when no timeline exists for a run ID.
func errTimelineNotFound(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeTimelineNotFound, fmt.Sprintf("no timeline for run %q", runID), cause)
}

// errInternalTimelineStoreFailed returns an error when a timeline store operation fails.
func errInternalTimelineStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTimelineStoreFailed, fmt.Errorf("timelineStoreFailed: %w", cause))
}

// errInternalTimelinePublisherFailed returns an error when a stored timeline cannot be announced.
func errInternalTimelinePublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTimelinePublisherFailed, fmt.Errorf("timelinePublisherFailed: %w", cause))
}

// errInternalDecoderFailed returns an error when the decoder fails without a service error.
func errInternalDecoderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDecoderFailed, fmt.Errorf("decoderFailed: %w", cause))
}
