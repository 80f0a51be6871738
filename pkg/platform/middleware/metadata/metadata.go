// Package metadata captures client network metadata early in the middleware
// chain so handlers and services can read it from the request context.
package metadata

import (
	"net/http"
	"strings"

	"gatekeep/pkg/requestcontext"
)

// ClientMetadata extracts the client IP address and User-Agent from the
// request and stores them in the context. Apply before any handler that
// assembles a risk assessment event.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(
			r.Context(),
			ClientIPFromRequest(r),
			r.Header.Get("User-Agent"),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest extracts the real client IP, handling proxies and load
// balancers in precedence order: X-Forwarded-For, X-Real-IP, RemoteAddr.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First entry is the original client; the rest are proxies.
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr carries a port ("127.0.0.1:1234", "[::1]:1234").
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
