package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/email-writer-api/internal/platform/metrics"
)

// unmatchedRoute labels requests that did not match any registered route,
// keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// NewMetricsMiddleware counts completed requests by route pattern and status code.
// chi reports patterns without a trailing slash, so "/generate/" is labeled "/generate".
func NewMetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.ObserveHTTP(route, strconv.Itoa(status))
		})
	}
}
