// cmd/web/main.go
//
// Folio – dev server entry point.
//
// Start-up
// --------
//
//  1. Load configuration (conf/.env → conf/global.yaml → FOLIO_ env).
//
//  2. Start the daily rotating logger (tees to console in a TTY).
//
//  3. Open the optional GeoLite2 DB for visitor enrichment.
//
//  4. Serve public/ (index.html, wasm_exec.js, folio.wasm) with security
//     headers, plus /healthz and /metrics.  When http.metrics_addr is set,
//     metrics get their own listener.
//
//  5. SIGINT/SIGTERM cancel the errgroup context and every listener drains.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yanizio/folio/internal/config"
	"github.com/yanizio/folio/internal/logger"
	"github.com/yanizio/folio/internal/server"
	"github.com/yanizio/folio/internal/visitor"
	"github.com/yanizio/folio/internal/web"
)

const shutdownGrace = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, logger.RunningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 1.  Visitor enrichment (geo optional) ──────────────────────────
	//
	enr, err := visitor.Open(cfg.Visitor.GeoDB, logOut)
	if err != nil {
		logOut.Fatalw("visitor enrichment", "err", err)
	}
	defer enr.Close()

	//
	// ── 2.  Listeners ───────────────────────────────────────────────────
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	separateMetrics := cfg.HTTP.MetricsAddr != ""
	site := server.New(cfg.HTTP, web.NewRouter(cfg, enr, logOut, web.Options{MountMetrics: !separateMetrics}))
	g.Go(func() error {
		logOut.Infow("site listening", "addr", cfg.HTTP.ListenAddr, "public", cfg.Paths.Public)
		return server.Serve(ctx, site, shutdownGrace)
	})

	if separateMetrics {
		metricsCfg := cfg.HTTP
		metricsCfg.ListenAddr = cfg.HTTP.MetricsAddr
		metricsSrv := server.New(metricsCfg, web.MetricsHandler())
		g.Go(func() error {
			logOut.Infow("metrics listening", "addr", metricsCfg.ListenAddr)
			return server.Serve(ctx, metricsSrv, shutdownGrace)
		})
	}

	if err := g.Wait(); err != nil {
		logOut.Errorw("http server", "err", err)
		os.Exit(1)
	}
	logOut.Info("shut down cleanly")
}
