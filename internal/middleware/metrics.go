package middleware

import (
	"net/http"
	"time"

	"rotorhub/internal/metrics"
)

func RecordMetrics(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		next.ServeHTTP(w, r)
		metrics.RequestDuration.WithLabelValues(r.URL.Path, r.Method).Observe(time.Since(startTime).Seconds())
	}
	return http.HandlerFunc(fn)
}
