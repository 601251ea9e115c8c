package analyzers

import (
	"fmt"

	"click-rate/internal/shared/svcerrors"
)

const (
	codeReportNotFound                = "ANL_1000"
	codeTimelineNotFound              = "ANL_1001"
	codeInvalidTimeline               = "ANL_1002"
	codeInternalTimelineStoreFailed   = "ANL_9000"
	codeInternalRateReportStoreFailed = "ANL_9001"
	codeInternalReportBuildFailed     = "ANL_9002"
)

// errReportNotFound returns an error when a run has no rate report (unknown or not analyzed yet).
func errReportNotFound(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("no rate report for run %q", runID), cause)
}

// errTimelineNotFound returns an error when an announced timeline is missing from the store.
func errTimelineNotFound(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeTimelineNotFound, fmt.Sprintf("no timeline for run %q", runID), cause)
}

// errInvalidTimeline returns an error when a stored timeline cannot be analyzed.
func errInvalidTimeline(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeline, "timeline cannot be analyzed", cause)
}

func errInternalTimelineStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTimelineStoreFailed, fmt.Errorf("timelineStoreFailed: %w", cause))
}

func errInternalRateReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRateReportStoreFailed, fmt.Errorf("rateReportStoreFailed: %w", cause))
}

func errInternalReportBuildFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportBuildFailed, fmt.Errorf("reportBuildFailed: %w", cause))
}
