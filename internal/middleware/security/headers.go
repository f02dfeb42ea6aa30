// Package security applies response hardening and CORS for the JSON API.
// The dashboard frontend is served from a different origin, so cross-origin
// reads must be allowed explicitly.
package security

import "net/http"

// HeadersConfig holds security headers configuration
type HeadersConfig struct {
	XFrameOptions       string
	XContentTypeOptions string
	ReferrerPolicy      string
	AllowOrigin         string
}

// DefaultHeadersConfig returns defaults suitable for a JSON-only API.
func DefaultHeadersConfig() HeadersConfig {
	return HeadersConfig{
		XFrameOptions:       "DENY",
		XContentTypeOptions: "nosniff",
		ReferrerPolicy:      "no-referrer",
		AllowOrigin:         "*",
	}
}

// Headers returns middleware applying the configured headers and answering
// CORS preflight requests.
func Headers(cfg HeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Frame-Options", cfg.XFrameOptions)
			h.Set("X-Content-Type-Options", cfg.XContentTypeOptions)
			h.Set("Referrer-Policy", cfg.ReferrerPolicy)

			if cfg.AllowOrigin != "" {
				h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
