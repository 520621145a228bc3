package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

var admissionRejectedTotal, _ = httpMeter.Int64Counter("http.server.admission.rejected.total",
	metric.WithDescription("Requests rejected by the process-wide rate limit"),
)

// RateLimit enforces a process-wide token bucket of perSecond requests per
// second (burst = perSecond, refilled continuously). Rejected requests get
// a 429 and never reach the router or the store. Rejection is expected
// backpressure, not an error: it is counted in metrics but not logged as
// a failure. Per-route latency metrics sit inside this layer, so they only
// observe admitted requests.
func RateLimit(perSecond int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				admissionRejectedTotal.Add(r.Context(), 1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"rate_limited"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
