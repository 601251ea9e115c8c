package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	analyzermocks "click-rate/internal/analyzers/mocks"
	ingestormocks "click-rate/internal/ingestors/mocks"
	"click-rate/internal/models"
	"click-rate/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func float64Ptr(v float64) *float64 { return &v }

func sampleReport() *models.RateReport {
	return &models.RateReport{
		RunID:               "run-1",
		WindowCount:         3,
		WindowLengthSeconds: 1,
		TotalEvents:         3,
		TotalElapsedSeconds: 3,
		PerWindowRates:      []float64{2, 0, 1},
		AggregateRate:       float64Ptr(1),
		Intervals: &models.IntervalSummary{
			Count:                   2,
			Median:                  1,
			Mean:                    1,
			MedianInstantaneousRate: float64Ptr(1),
		},
		CreatedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
}

type reportHandlerFixture struct {
	handler          AppHttpHandler
	analysisService  *analyzermocks.MockAnalysisService
	ingestionService *ingestormocks.MockRunIngestionService
}

func newReportHandlerFixture(t *testing.T) *reportHandlerFixture {
	ctrl := gomock.NewController(t)
	f := &reportHandlerFixture{
		analysisService:  analyzermocks.NewMockAnalysisService(ctrl),
		ingestionService: ingestormocks.NewMockRunIngestionService(ctrl),
	}
	f.handler = NewReportHandler(f.analysisService, f.ingestionService)
	return f
}

func reportRequest(query string) *http.Request {
	return withRunID(httptest.NewRequest(http.MethodGet, "/runs/run-1/report"+query, nil), "run-1")
}

func TestReportHandler_Handle_JSON(t *testing.T) {
	t.Parallel()

	f := newReportHandlerFixture(t)
	f.analysisService.EXPECT().GetReport(gomock.Any(), "run-1").Return(sampleReport(), nil)

	rr := httptest.NewRecorder()
	err := f.handler.Handle(rr, reportRequest(""))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"runId": "run-1",
		"windowCount": 3,
		"windowLengthSeconds": 1,
		"totalEvents": 3,
		"totalElapsedSeconds": 3,
		"perWindowRatesHz": [2, 0, 1],
		"aggregateRateHz": 1,
		"intervals": {"count": 2, "medianSeconds": 1, "meanSeconds": 1, "medianInstantaneousRateHz": 1},
		"createdAt": "2026-10-19T09:00:00Z"
	}`, rr.Body.String())
}

func TestReportHandler_Handle_UndefinedStatisticsAreNull(t *testing.T) {
	t.Parallel()

	f := newReportHandlerFixture(t)
	report := &models.RateReport{
		RunID:          "run-1",
		PerWindowRates: []float64{},
		Undefined:      []string{models.UndefinedAggregateRate, models.UndefinedIntervals},
	}
	f.analysisService.EXPECT().GetReport(gomock.Any(), "run-1").Return(report, nil)

	rr := httptest.NewRecorder()
	require.NoError(t, f.handler.Handle(rr, reportRequest("?format=json")))

	assert.Contains(t, rr.Body.String(), `"aggregateRateHz":null`)
	assert.Contains(t, rr.Body.String(), `"intervals":null`)
	assert.Contains(t, rr.Body.String(), `"undefined":["aggregate_rate","intervals"]`)
}

func TestReportHandler_Handle_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		query            string
		expectTimestamps bool
	}{
		{name: "without timestamps", query: "?format=text"},
		{name: "with timestamps", query: "?format=TEXT&timestamps=true", expectTimestamps: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportHandlerFixture(t)
			f.analysisService.EXPECT().GetReport(gomock.Any(), "run-1").Return(sampleReport(), nil)
			f.ingestionService.EXPECT().GetTimeline(gomock.Any(), "run-1").Return(sampleTimeline(), nil)

			rr := httptest.NewRecorder()
			err := f.handler.Handle(rr, reportRequest(tt.query))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), "Counts per window: [2, 0, 1]\n")
			assert.Contains(t, rr.Body.String(), "Overall rate: 1 Hz\n")
			if tt.expectTimestamps {
				assert.Contains(t, rr.Body.String(), "All absolute timestamps (ns): [10 20 2000000005]\n")
			} else {
				assert.NotContains(t, rr.Body.String(), "All absolute timestamps")
			}
		})
	}
}

func TestReportHandler_Handle_TextWithoutTimeline(t *testing.T) {
	t.Parallel()

	f := newReportHandlerFixture(t)
	f.analysisService.EXPECT().GetReport(gomock.Any(), "run-1").Return(sampleReport(), nil)
	f.ingestionService.EXPECT().
		GetTimeline(gomock.Any(), "run-1").
		Return(nil, svcerrors.NewNotFoundError("ING_1003", "timeline not found", nil))

	rr := httptest.NewRecorder()
	err := f.handler.Handle(rr, reportRequest("?format=text"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Run: run-1\n")
	assert.NotContains(t, rr.Body.String(), "Counts per window")
}

func TestReportHandler_Handle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		setup        func(f *reportHandlerFixture)
		expectedCode string
	}{
		{
			name:         "unsupported format",
			query:        "?format=xml",
			expectedCode: codeUnsupportedFormat,
		},
		{
			name:         "invalid timestamps flag",
			query:        "?format=text&timestamps=maybe",
			expectedCode: codeInvalidQueryParam,
		},
		{
			name:  "report not found",
			query: "",
			setup: func(f *reportHandlerFixture) {
				f.analysisService.EXPECT().
					GetReport(gomock.Any(), "run-1").
					Return(nil, svcerrors.NewNotFoundError("ANL_1000", "rate report not found", nil))
			},
			expectedCode: "ANL_1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			err := f.handler.Handle(httptest.NewRecorder(), reportRequest(tt.query))

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
		})
	}
}
