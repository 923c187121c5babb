// internal/config/model.go
//
// Typed configuration model for Folio.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                         – dotenv values,
//   • `conf/global.yaml`                      – primary static file,
//   • `FOLIO_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • Durations are written as Go duration strings ("5s", "1m").
//   • The `Paths.Root` value is filled at runtime; YAML must not set it.

package config

import "time"

//
// HTTP section
//

// HTTP holds dev-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	MetricsAddr  string        `koanf:"metrics_addr"  validate:"omitempty,hostname_port"` // empty: /metrics on ListenAddr
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`
}

//
// Contact section
//

// Contact configures the contact workflow outside the browser.  The wasm
// build compiles in the same defaults.
type Contact struct {
	Endpoint     string        `koanf:"endpoint"      validate:"required,url"`
	Subject      string        `koanf:"subject"       validate:"required"`
	SendingLabel string        `koanf:"sending_label"`
	ClearAfter   time.Duration `koanf:"clear_after"   validate:"gt=0"`
	Timeout      time.Duration `koanf:"timeout"       validate:"gte=0"`
}

//
// Visitor section
//

// Visitor configures page-view enrichment.  An empty GeoDB disables the
// GeoLite2 lookup.
type Visitor struct {
	GeoDB string `koanf:"geo_db"`
}

//
// Paths section
//

// Paths locates files on disk.  Root is discovered at runtime; Public is
// relative to Root unless absolute.
type Paths struct {
	Root   string `koanf:"-"`
	Public string `koanf:"public" validate:"required"`
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Contact Contact `koanf:"contact"`
	Visitor Visitor `koanf:"visitor"`
	Paths   Paths   `koanf:"paths"`
}
