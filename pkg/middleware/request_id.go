package middleware

import (
	"net/http"

	"github.com/terrasense/slope-monitor/pkg/requestid"
)

const requestIDHeader = "X-Request-Id"

// RequestID takes the request ID from the x-request-id header, or
// generates one, and injects it into the request context so every layer
// below the router can correlate its logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = requestid.Generate()
		}

		ctx := requestid.ToContext(r.Context(), id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
