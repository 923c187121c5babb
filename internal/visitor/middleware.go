// internal/visitor/middleware.go
//
// HTTP middleware that enriches each page request with *Info.
//
/*
Context
--------
The dev server mounts Enrich ahead of the static file handler.  For every
request it:

  1. Parses the User-Agent header.
  2. Extracts the left-most client IP from X-Forwarded-For or X-Real-IP,
     falling back to `r.RemoteAddr`.
  3. Performs a GeoLite2 lookup when a DB is configured.
  4. Stores `*Info` in the request context for the access log and counts
     the page view by device class.

Asset requests (wasm, js, css, images) are passed through untouched, so
page_views_total counts pages only.

Notes
-----
  • When FOLIO_LOG_LEVEL=debug each page logs a DEBUG span.
  • *geoip2.Reader is safe for concurrent reads.
*/
package visitor

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"

	"github.com/yanizio/folio/internal/metrics"
)

// Enricher carries the optional geo reader shared by all requests.
type Enricher struct {
	geo    CityReader
	closer io.Closer
	log    *zap.SugaredLogger
}

// Open builds an Enricher.  An empty geoDB path disables geolocation.
func Open(geoDB string, log *zap.SugaredLogger) (*Enricher, error) {
	e := &Enricher{log: log}
	if geoDB == "" {
		return e, nil
	}
	r, err := geoip2.Open(geoDB)
	if err != nil {
		return nil, fmt.Errorf("open geo db %s: %w", geoDB, err)
	}
	e.geo, e.closer = r, r
	return e, nil
}

// Close releases the geo database, if any.
func (e *Enricher) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

/*──────────────────────────── middleware ───────────────────────────────────*/

// Enrich wraps next, attaching *Info to page requests.
func (e *Enricher) Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isPage(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		info := &Info{
			UA:        ParseUA(r.UserAgent()),
			Geo:       lookupGeo(e.geo, ip),
			Path:      r.URL.Path,
			Timestamp: time.Now().UTC(),
		}
		metrics.PageViews.WithLabelValues(info.UA.Device).Inc()

		if e.log != nil {
			e.log.Debugw("page view",
				"ip", info.Geo.IP,
				"country", info.Geo.CountryISO,
				"city", info.Geo.City,
				"browser", info.UA.Browser,
				"device", info.UA.Device,
				"bot", info.UA.IsBot,
				"path", info.Path,
			)
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isPage reports whether p names an HTML page rather than an asset.
func isPage(p string) bool {
	switch ext := path.Ext(p); ext {
	case "", ".html", ".htm":
		return true
	default:
		return false
	}
}

/*──────────────────────────── client IP helper ─────────────────────────────*/

// clientIP extracts the left-most address from X-Forwarded-For or
// X-Real-IP, falling back to r.RemoteAddr ("ip:port").
func clientIP(r *http.Request) net.IP {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return net.ParseIP(host)
	}
	return nil
}
