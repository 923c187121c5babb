// Package metrics holds Prometheus instruments that are used across Folio.
//
// Site collectors are registered with the global registry, so the dev
// server exposes them on /metrics.  Contact collectors live in
// ContactRegistry instead: browser submissions run in wasm, which never
// imports this package, so only the contact CLI feeds them and writes them
// out as a node_exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yanizio/folio/internal/contact"
)

// ContactRegistry holds the contact workflow collectors.
var ContactRegistry = prometheus.NewRegistry()

var (
	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form attempts by outcome.",
		}, []string{"outcome"})

	ContactSubmitSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "contact_submit_seconds",
			Help:    "Time from submit to restored form, in seconds.",
			Buckets: prometheus.DefBuckets,
		})

	PageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Pages served by device class.",
		}, []string{"device"})
)

func init() {
	prometheus.MustRegister(PageViews)
	ContactRegistry.MustRegister(
		ContactSubmissions,
		ContactSubmitSeconds,
	)
}

// ContactObserver feeds contact.Controller outcomes into the collectors.
type ContactObserver struct{}

var _ contact.Observer = ContactObserver{}

// Observe implements contact.Observer.  Busy attempts never reached the
// form, so they are counted but not timed.
func (ContactObserver) Observe(o contact.Outcome, took time.Duration) {
	ContactSubmissions.WithLabelValues(o.String()).Inc()
	if o != contact.OutcomeBusy {
		ContactSubmitSeconds.Observe(took.Seconds())
	}
}
