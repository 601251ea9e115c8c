package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("DEC_1000", "window length must be positive", nil),
			wantErr: NewInvalidArgumentError("DEC_1000", "window length must be positive", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ING_9000", nil)),
			wantErr: NewInternalError("ING_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Constructors(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	tests := []struct {
		name           string
		err            *ServiceError
		wantCategory   string
		wantStatusCode int
		wantInternal   bool
		wantUndefined  bool
	}{
		{"invalid argument", NewInvalidArgumentError("X_1000", "bad", cause), "invalid_argument", 400, false, false},
		{"unprocessable", NewUnprocessableError("X_1001", "mismatch", cause), "unprocessable", 422, false, false},
		{"undefined result", NewUndefinedResultError("X_2000", "empty", cause), "undefined_result", 200, false, true},
		{"not found", NewNotFoundError("X_1404", "missing", cause), "not_found", 404, false, false},
		{"resource conflict", NewResourceConflictError("X_1409", "exists", cause), "resource_conflict", 409, false, false},
		{"internal", NewInternalError("X_9000", cause), "internal", 500, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantStatusCode, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.Equal(t, tt.wantUndefined, tt.err.IsUndefinedResult())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestServiceError_ErrorString(t *testing.T) {
	t.Parallel()

	err := NewUnprocessableError("DEC_1001", "sum of counts does not match timestamp count", nil)
	assert.Equal(t, "DEC_1001: sum of counts does not match timestamp count", err.Error())
}

func TestInternalErrorHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SYS_9000", NewInternalErrorPanic(nil).Code)
	assert.Equal(t, "SYS_9001", NewInternalErrorUndefined(nil).Code)
	assert.Equal(t, "internal server error", NewInternalErrorUndefined(nil).Message)
}
