package middleware

import (
	"net/http"
)

func AddHeaders(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Context().Value(correlationIDKey).(string)
		headers := map[string]string{
			"Connection": "Keep-Alive",
			// Schedules move minute to minute; clients may serve a stale copy
			// for a short window while revalidating.
			"Cache-Control":    "max-age=60,stale-while-revalidate=300",
			"Content-Type":     "application/json",
			"X-Correlation-ID": correlationID,
		}
		for key, value := range headers {
			w.Header().Set(key, value)
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
