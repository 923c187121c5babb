// internal/web/router.go
//
// Folio – dev server routes.
//
// Context
//   The portfolio is a static site plus folio.wasm.  The router serves the
//   public/ tree, health, and (optionally) Prometheus metrics:
//
//     GET /healthz   – liveness
//     GET /metrics   – promhttp, unless metrics run on their own listener
//     GET /*         – static files; .wasm as application/wasm
//
//   Middleware order: request ID → recoverer → security headers.  Static
//   requests then pass visitor enrichment (pages only) ahead of the access
//   log, so page lines carry the visitor's device and country.
//
//------------------------------------------------------------------------------

package web

import (
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/folio/internal/config"
	"github.com/yanizio/folio/internal/middleware"
	"github.com/yanizio/folio/internal/visitor"
)

// Options selects optional routes.
type Options struct {
	// MountMetrics adds /metrics to this router.
	MountMetrics bool
}

// NewRouter builds the site handler.
func NewRouter(cfg *config.Config, enr *visitor.Enricher, log *zap.SugaredLogger, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security(cfg.Contact.Endpoint))

	r.Group(func(r chi.Router) {
		r.Use(accessLog(log))
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("ok"))
		})
		if opts.MountMetrics {
			r.Handle("/metrics", promhttp.Handler())
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(enr.Enrich)
		r.Use(accessLog(log))
		r.Handle("/*", wasmType(http.FileServer(http.Dir(cfg.Paths.Public))))
	})
	return r
}

// MetricsHandler serves /metrics alone, for a separate listener.
func MetricsHandler() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// wasmType pins the MIME type browsers require for streaming compilation.
func wasmType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one INFO line per request.  Page requests enriched
// upstream also log device, browser, and country.
func accessLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start),
				"request_id", chimw.GetReqID(r.Context()),
			}
			if info := visitor.FromContext(r.Context()); info != nil {
				fields = append(fields,
					"device", info.UA.Device,
					"browser", info.UA.Browser,
					"country", info.Geo.CountryISO,
				)
			}
			log.Infow("http request", fields...)
		})
	}
}
