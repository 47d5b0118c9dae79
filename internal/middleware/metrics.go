package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records completed requests
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics creates middleware that reports every request to observer,
// labelled by route template rather than raw path
func Metrics(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := NewResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			observer.ObserveRequest(r.Method, routeName(r), wrapped.status, time.Since(start))
		})
	}
}
