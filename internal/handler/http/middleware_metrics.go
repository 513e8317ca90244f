package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withMetrics counts completed requests by chi route pattern and status.
// The pattern is read after the downstream handler ran, once routing has
// resolved it, so counters aggregate by route rather than by raw URL.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.ObserveRequest(route, lw.status)
	})
}
