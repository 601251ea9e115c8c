package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"click-rate/internal/ingestors"
	ingestormocks "click-rate/internal/ingestors/mocks"
	"click-rate/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleRunBody = `{"counts":[2,0,1],"timestamps":[10,20,5]}`

func newIngestRunRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/runs", strings.NewReader(body))
	req.Header.Set(headerIdempotencyKey, "run-1")
	req.Header.Set(headerContentType, "application/json")
	return req
}

func TestIngestRunHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockIngestionService := ingestormocks.NewMockRunIngestionService(ctrl)
	handler := NewIngestRunHandler(mockIngestionService)

	mockIngestionService.EXPECT().
		IngestRun(gomock.Any(), "run-1", "application/json", gomock.Any()).
		Return(&ingestors.IngestResult{RunID: "run-1", WindowCount: 3, EventCount: 3, OutOfWindowCount: 0}, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newIngestRunRequest(sampleRunBody))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response IngestRunResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, IngestRunResponse{RunID: "run-1", WindowCount: 3, EventCount: 3}, response)
}

func TestIngestRunHandler_Handle_PassesBodyThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockIngestionService := ingestormocks.NewMockRunIngestionService(ctrl)
	handler := NewIngestRunHandler(mockIngestionService)

	mockIngestionService.EXPECT().
		IngestRun(gomock.Any(), "run-1", "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, r io.Reader) (*ingestors.IngestResult, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, sampleRunBody, string(body))
			return &ingestors.IngestResult{RunID: "run-1"}, nil
		})

	err := handler.Handle(httptest.NewRecorder(), newIngestRunRequest(sampleRunBody))
	require.NoError(t, err)
}

func TestIngestRunHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockIngestionService := ingestormocks.NewMockRunIngestionService(ctrl)
	handler := NewIngestRunHandler(mockIngestionService)

	expectedErr := svcerrors.NewUnprocessableError("DEC_1001", "sum of counts (2) does not match number of timestamps (3)", nil)
	mockIngestionService.EXPECT().
		IngestRun(gomock.Any(), "run-1", "application/json", gomock.Any()).
		Return(nil, expectedErr)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newIngestRunRequest(`{"counts":[2],"timestamps":[1,2,3]}`))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "DEC_1001", svcErr.Code)
	// status is left to the error adapter
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}
