// internal/web/router_test.go
//
// Unit-tests for the dev server router.
//
// Context
// -------
// Each test serves a temp public/ tree holding index.html and a stub
// folio.wasm.  Covered: static files with security headers, the wasm MIME
// type, /healthz, optional /metrics, and access-log lines that carry the
// visitor's device on page requests only.

package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yanizio/folio/internal/config"
	"github.com/yanizio/folio/internal/visitor"
)

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()
	return newLoggedRouter(t, zap.NewNop().Sugar(), opts)
}

func newLoggedRouter(t *testing.T, log *zap.SugaredLogger, opts Options) http.Handler {
	t.Helper()
	public := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"),
		[]byte(`<form class="contact-form"></form>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "folio.wasm"),
		[]byte{0x00, 0x61, 0x73, 0x6d}, 0o644))

	cfg := config.Defaults()
	cfg.Paths.Public = public

	enr, err := visitor.Open("", nil)
	require.NoError(t, err)
	return NewRouter(&cfg, enr, log, opts)
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_ServesIndexWithSecurityHeaders(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := get(h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "contact-form")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "connect-src 'self' http://localhost:8080")
}

func TestRouter_WasmContentType(t *testing.T) {
	rec := get(newTestRouter(t, Options{}), "/folio.wasm")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))
}

func TestRouter_Healthz(t *testing.T) {
	rec := get(newTestRouter(t, Options{}), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_MetricsOptional(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(newTestRouter(t, Options{}), "/metrics").Code)
	assert.Equal(t, http.StatusOK, get(newTestRouter(t, Options{MountMetrics: true}), "/metrics").Code)
	assert.Equal(t, http.StatusOK, get(MetricsHandler(), "/metrics").Code)
}

func TestRouter_AccessLogCarriesVisitor(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := newLoggedRouter(t, zap.New(core).Sugar(), Options{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
		"(KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36")
	h.ServeHTTP(httptest.NewRecorder(), req)
	get(h, "/healthz")

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 2)

	page := entries[0].ContextMap()
	assert.Equal(t, "/", page["path"])
	assert.Equal(t, "Desktop", page["device"])
	assert.Equal(t, "Chrome", page["browser"])

	health := entries[1].ContextMap()
	assert.Equal(t, "/healthz", health["path"])
	assert.NotContains(t, health, "device")
}
