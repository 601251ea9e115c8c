package http

import (
	"fmt"

	"click-rate/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam    = "HTTP_1000"
	codeUnsafeInteger        = "HTTP_1001"
	codeUnsupportedFormat    = "HTTP_1002"
	codeMissingQueryParam    = "HTTP_1003"
	codeResponseEncodeFailed = "HTTP_9000"
)

func errInvalidQueryParam(name, raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %s=%q", name, raw), cause)
}

func errMissingQueryParam(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingQueryParam, msg, nil)
}

// errUnsafeInteger is returned when a timeline value cannot be represented exactly by a JSON number.
func errUnsafeInteger(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnprocessableError(codeUnsafeInteger, msg, cause)
}

func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported report format %q: must be json or text", format), nil)
}

func errResponseEncodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeResponseEncodeFailed, cause)
}
