package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/email-writer-api/internal/api/shared"
	"github.com/phrazzld/email-writer-api/internal/platform/logger"
	"github.com/phrazzld/email-writer-api/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTraceID string
	var seenLogger *slog.Logger
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, rr.Header().Get(shared.TraceIDHeader))
	require.NotNil(t, seenLogger)
	assert.Contains(t, logs.String(), `"trace_id":"`+seenTraceID+`"`)
	assert.Contains(t, logs.String(), "request started")
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	r := chi.NewRouter()
	r.Use(NewMetricsMiddleware(m))
	r.Post("/generate/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/", nil),
		httptest.NewRequest(http.MethodPost, "/generate/", nil),
		httptest.NewRequest(http.MethodGet, "/nowhere", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	expected := `
# HELP email_writer_http_requests_total Total number of HTTP requests by route and status code.
# TYPE email_writer_http_requests_total counter
email_writer_http_requests_total{code="200",route="/"} 1
email_writer_http_requests_total{code="404",route="unmatched"} 1
email_writer_http_requests_total{code="500",route="/generate"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"email_writer_http_requests_total"))
}
