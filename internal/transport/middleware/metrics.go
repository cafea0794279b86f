package middleware

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

type requestRecorder interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics records request count and latency per route template.
// It must be installed with mux Router.Use so the matched route is known.
func Metrics(rec requestRecorder, clock clockwork.Clock) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clock.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			rec.ObserveRequest(r.Method, routeOf(r), sw.status, clock.Since(start))
		})
	}
}
