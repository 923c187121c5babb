// internal/config/loader_test.go
//
// Unit-tests for the layered loader.  Each test points FOLIO_ROOT at a temp
// tree so the developer's own conf/ never leaks in.
//
// Run: go test ./internal/config -v

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, root, name, body string) {
	t.Helper()
	dir := filepath.Join(root, "conf")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoad_DefaultsWithoutYAML(t *testing.T) {
	root := t.TempDir()
	t.Setenv(rootEnvKey, root)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/contact", cfg.Contact.Endpoint)
	assert.Equal(t, "Portfolio Contact Form Submission", cfg.Contact.Subject)
	assert.Equal(t, 5*time.Second, cfg.Contact.ClearAfter)
	assert.Equal(t, filepath.Join(root, "public"), cfg.Paths.Public)
	assert.Equal(t, root, cfg.Paths.Root)
	assert.Same(t, cfg, Get())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv(rootEnvKey, root)
	writeConf(t, root, "global.yaml", `
http:
  listen_addr: "0.0.0.0:9000"
contact:
  endpoint: "https://api.example.com/contact"
  clear_after: "8s"
  timeout: "20s"
paths:
  public: "site"
`)
	t.Setenv("FOLIO_CONTACT__SUBJECT", "Hello from env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.HTTP.ListenAddr)
	assert.Equal(t, "https://api.example.com/contact", cfg.Contact.Endpoint)
	assert.Equal(t, "Hello from env", cfg.Contact.Subject)
	assert.Equal(t, 8*time.Second, cfg.Contact.ClearAfter)
	assert.Equal(t, 20*time.Second, cfg.Contact.Timeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, filepath.Join(root, "site"), cfg.Paths.Public)

	opts := cfg.ContactOptions()
	assert.Equal(t, "Hello from env", opts.Subject)
	assert.Equal(t, 8*time.Second, opts.ClearAfter)
}

func TestLoad_DotEnvFeedsOverrides(t *testing.T) {
	root := t.TempDir()
	t.Setenv(rootEnvKey, root)
	writeConf(t, root, ".env", "FOLIO_VISITOR__GEO_DB=/var/geo/city.mmdb\n")
	t.Cleanup(func() { os.Unsetenv("FOLIO_VISITOR__GEO_DB") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/geo/city.mmdb", cfg.Visitor.GeoDB)
}

func TestLoad_RejectsBadEndpoint(t *testing.T) {
	root := t.TempDir()
	t.Setenv(rootEnvKey, root)
	t.Setenv("FOLIO_CONTACT__ENDPOINT", "not a url")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBrokenYAML(t *testing.T) {
	root := t.TempDir()
	t.Setenv(rootEnvKey, root)
	writeConf(t, root, "global.yaml", "contact: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}
