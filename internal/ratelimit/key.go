package ratelimit

import (
	"net/http"
	"strings"
)

// ClientKey derives the rate-limit key for a request: the first
// X-Forwarded-For IP, then X-Real-IP, else a literal "unknown" bucket shared
// by every client the proxy did not identify. Behind a proxy that strips
// forwarding headers all anonymous traffic therefore shares one budget.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first IP if there are multiple
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return "unknown"
}
