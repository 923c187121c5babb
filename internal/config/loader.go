// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from compiled-in defaults and
three layers (highest precedence last):

  1. Optional `.env` file at `<root>/conf/.env`.
  2. `conf/global.yaml` (optional; the contact CLI runs fine without it).
  3. Environment variables prefixed `FOLIO_`, where `__` maps to “.”
     (e.g., `FOLIO_CONTACT__ENDPOINT → contact.endpoint`).

After merging, the tree is unmarshalled over the defaults, validated,
enriched with the runtime root path, and cached in an `atomic.Pointer` for
lock-free reads.  `Reload()` calls `Load()` again and swaps the pointer.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global sugared logger (`zap.S()`), so boot issues surface
    before the file logger is installed.
*/
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/yanizio/folio/internal/contact"
)

const (
	envPrefix  = "FOLIO_"
	rootEnvKey = "FOLIO_ROOT"
)

var current atomic.Pointer[Config]

/*──────────────────────────── defaults ─────────────────────────────────────*/

// Defaults returns the configuration used when no layer sets a key.
func Defaults() Config {
	opts := contact.DefaultOptions()
	return Config{
		HTTP: HTTP{
			ListenAddr:   "127.0.0.1:3000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Contact: Contact{
			Endpoint:     contact.DefaultEndpoint,
			Subject:      opts.Subject,
			SendingLabel: opts.SendingLabel,
			ClearAfter:   opts.ClearAfter,
		},
		Paths: Paths{Public: "public"},
	}
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves FOLIO_ROOT or climbs directories until conf/global.yaml
// is found.  Falls back to the working directory.
func rootDir() string {
	if r := os.Getenv(rootEnvKey); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, validates, and caches Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	switch _, err := os.Stat(yamlPath); {
	case errors.Is(err, fs.ErrNotExist):
		zap.S().Debugw("config yaml absent, using defaults", "file", yamlPath)
	default:
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// FOLIO_CONTACT__CLEAR_AFTER → contact.clear_after
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	if !filepath.IsAbs(cfg.Paths.Public) {
		cfg.Paths.Public = filepath.Join(root, cfg.Paths.Public)
	}
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"contact_endpoint", cfg.Contact.Endpoint,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config  { return current.Load() }
func Reload() error { _, err := Load(); return err }

// ContactOptions converts the contact section for contact.NewController.
func (c *Config) ContactOptions() contact.Options {
	return contact.Options{
		Subject:      c.Contact.Subject,
		SendingLabel: c.Contact.SendingLabel,
		ClearAfter:   c.Contact.ClearAfter,
	}
}
