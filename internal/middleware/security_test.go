// internal/middleware/security_test.go
//
// Unit-tests for the security header middleware and CSP builder.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSecurityPolicy_ConnectOrigins(t *testing.T) {
	csp := ContentSecurityPolicy("http://localhost:8080/api/contact", "::bad::", "")

	assert.Contains(t, csp, "connect-src 'self' http://localhost:8080;")
	assert.Contains(t, csp, "'wasm-unsafe-eval'")
	assert.NotContains(t, csp, "/api/contact")
}

func TestSecurity_SetsHeadersBeforeBody(t *testing.T) {
	h := Security("https://api.example.com/contact")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "https://api.example.com")
}
