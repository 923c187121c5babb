// internal/server/timeouts.go
//
// HTTP server helper with explicit timeouts.
//
//   • ReadTimeout   – abort slow-loris headers
//   • WriteTimeout  – cap total response time (the wasm binary is the
//                     largest asset, so keep this generous)
//   • IdleTimeout   – close keep-alives on idle clients
//
// Values come from the `http` config section; zero falls back to the
// defaults below.
//

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/yanizio/folio/internal/config"
)

const (
	defaultRead  = 10 * time.Second
	defaultWrite = 15 * time.Second
	defaultIdle  = 60 * time.Second
)

// New constructs an *http.Server for cfg.ListenAddr.
func New(cfg config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler,
		ReadTimeout:  orDefault(cfg.ReadTimeout, defaultRead),
		WriteTimeout: orDefault(cfg.WriteTimeout, defaultWrite),
		IdleTimeout:  orDefault(cfg.IdleTimeout, defaultIdle),
	}
}

// Serve runs srv until ctx is cancelled, then drains connections for up to
// grace.  A clean shutdown returns nil.
func Serve(ctx context.Context, srv *http.Server, grace time.Duration) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
