package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"click-rate/internal/models"
	"click-rate/internal/planners"
	plannermocks "click-rate/internal/planners/mocks"
	"click-rate/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlanHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		expectedPlan models.WindowPlan
	}{
		{
			name:  "nanosecond duration with explicit window length",
			query: "?totalDurationNs=8000000000&windowLengthNs=1000000000",
			expectedPlan: models.WindowPlan{
				TotalDuration: 8_000_000_000, WindowLength: 1_000_000_000, WindowCount: 8, MaxTagsPerWindow: 64, EventCapacity: 512,
			},
		},
		{
			name:  "partial last window rounds up",
			query: "?totalDurationNs=2500000000",
			expectedPlan: models.WindowPlan{
				TotalDuration: 2_500_000_000, WindowLength: 1_000_000_000, WindowCount: 3, MaxTagsPerWindow: 64, EventCapacity: 192,
			},
		},
		{
			name:  "seconds duration uses the default window length",
			query: "?totalDurationS=0.5",
			expectedPlan: models.WindowPlan{
				TotalDuration: 500_000_000, WindowLength: 1_000_000_000, WindowCount: 1, MaxTagsPerWindow: 64, EventCapacity: 64,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPlanHandler(planners.NewWindowPlanner(64), 1_000_000_000)

			rr := httptest.NewRecorder()
			err := handler.Handle(rr, httptest.NewRequest(http.MethodGet, "/plans"+tt.query, nil))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rr.Code)
			var plan models.WindowPlan
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
			assert.Equal(t, tt.expectedPlan, plan)
		})
	}
}

func TestPlanHandler_Handle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		expectedCode string
	}{
		{name: "no duration", query: "", expectedCode: codeMissingQueryParam},
		{name: "both durations", query: "?totalDurationNs=1&totalDurationS=1", expectedCode: codeMissingQueryParam},
		{name: "malformed duration", query: "?totalDurationNs=ten", expectedCode: codeInvalidQueryParam},
		{name: "malformed window length", query: "?totalDurationNs=10&windowLengthNs=1e9", expectedCode: codeInvalidQueryParam},
		{name: "zero duration", query: "?totalDurationNs=0", expectedCode: "PLN_1000"},
		{name: "negative window length", query: "?totalDurationS=1&windowLengthNs=-5", expectedCode: "PLN_1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPlanHandler(planners.NewWindowPlanner(64), 1_000_000_000)

			err := handler.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans"+tt.query, nil))

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
		})
	}
}

func TestPlanHandler_Handle_ForwardsToPlanner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockPlanner := plannermocks.NewMockWindowPlanner(ctrl)
	handler := NewPlanHandler(mockPlanner, 1_000_000_000)

	mockPlanner.EXPECT().
		Plan(int64(math.MaxInt64), int64(1)).
		Return(nil, svcerrors.NewInvalidArgumentError("PLN_1000", "event capacity overflows int64", models.ErrInvalidConfiguration))
	mockPlanner.EXPECT().
		PlanSeconds(2.5, int64(500_000_000)).
		Return(&models.WindowPlan{TotalDuration: 2_500_000_000, WindowLength: 500_000_000, WindowCount: 5}, nil)

	err := handler.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plans?totalDurationNs=9223372036854775807&windowLengthNs=1", nil))
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "PLN_1000", svcErr.Code)

	rr := httptest.NewRecorder()
	require.NoError(t, handler.Handle(rr, httptest.NewRequest(http.MethodGet, "/plans?totalDurationS=2.5&windowLengthNs=500000000", nil)))
	assert.Contains(t, rr.Body.String(), `"windowCount":5`)
}
