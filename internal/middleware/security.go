// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects standard headers on every response:
//
//   • Content-Security-Policy   –  self-only policy that still lets the page
//                                  compile folio.wasm and POST to the contact
//                                  intake origin
//   • X-Frame-Options           –  click-jacking defence
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Permissions-Policy        –  disables powerful features by default
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP; http.FileServer writes the body
//   immediately, so adding them afterwards would be too late.  Handlers may
//   still override any value.
// • HSTS is omitted: the dev server runs on plain HTTP.

package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// Security returns middleware that sets the headers above.  connectOrigins
// are added to connect-src; each may be a full URL, only its origin is kept.
func Security(connectOrigins ...string) func(http.Handler) http.Handler {
	csp := ContentSecurityPolicy(connectOrigins...)

	const (
		xfo   = "DENY"
		nosn  = "nosniff"
		refer = "strict-origin-when-cross-origin"
		perm  = "geolocation=(), microphone=(), camera=()"
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Content-Security-Policy", csp)
			h.Set("X-Frame-Options", xfo)
			h.Set("X-Content-Type-Options", nosn)
			h.Set("Referrer-Policy", refer)
			h.Set("Permissions-Policy", perm)
			next.ServeHTTP(w, r)
		})
	}
}

// ContentSecurityPolicy builds the policy string.  Unparseable origins are
// skipped.
func ContentSecurityPolicy(connectOrigins ...string) string {
	connect := []string{"'self'"}
	for _, raw := range connectOrigins {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		connect = append(connect, u.Scheme+"://"+u.Host)
	}

	return strings.Join([]string{
		"default-src 'self'",
		"script-src 'self' 'wasm-unsafe-eval'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src " + strings.Join(connect, " "),
		"object-src 'none'",
		"base-uri 'self'",
		"frame-ancestors 'none'",
	}, "; ")
}
