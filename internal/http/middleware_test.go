package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"click-rate/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, w io.Writer) loggers.Logger {
	t.Helper()

	logger, err := loggers.NewWithWriter("debug", w)
	require.NoError(t, err)
	return logger
}

func TestMwRequestID_GeneratesIDWhenNotProvided(t *testing.T) {
	t.Parallel()

	mw := mwRequestID(newTestLogger(t, io.Discard))

	var seen string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(headerRequestID)
		assert.NotNil(t, loggers.Ctx(r.Context()), "logger should be in context")
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/runs/run-1/report", nil))

	assert.Len(t, seen, 26, "request ID should be a ULID")
	assert.Equal(t, seen, rr.Header().Get(headerRequestID), "request ID is echoed on the response")
}

func TestMwRequestID_UsesProvidedID(t *testing.T) {
	t.Parallel()

	mw := mwRequestID(newTestLogger(t, io.Discard))
	providedID := "custom-request-id-12345"

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, providedID, r.Header.Get(headerRequestID))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	req.Header.Set(headerRequestID, providedID)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, providedID, rr.Header().Get(headerRequestID))
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		panicValue any
	}{
		{name: "string panic", panicValue: "test panic"},
		{name: "error panic", panicValue: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			handler := mwRequestID(newTestLogger(t, &logs))(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
			assert.Contains(t, logs.String(), "http panic recovered")
		})
	}
}

func TestMwRecoverer_PassesThroughWhenNoPanic(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", rr.Body.String())
}

func TestSetupMiddleware_CompletionLogCarriesRunID(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	router := chi.NewRouter()
	setupMiddleware(router, newTestLogger(t, &logs))
	router.Get("/runs/{"+paramRunID+"}/report", errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			return errUnsupportedFormat("xml")
		},
	}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/runs/run-42/report?format=xml", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	out := logs.String()
	assert.Contains(t, out, `"message":"request completed"`)
	assert.Contains(t, out, `"run_id":"run-42"`)
	assert.Contains(t, out, `"error_code":"HTTP_1002"`)
	assert.Contains(t, out, `"http_status":400`)
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	setupMiddleware(router, newTestLogger(t, io.Discard))

	router.Get("/test-id", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(headerRequestID), "request ID should be set")
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/test-panic", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test-id", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test-panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.NotEmpty(t, errorResponse.RequestID)
	assert.Equal(t, "internal", errorResponse.ErrorCategory)
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
}
