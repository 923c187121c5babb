// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `Load` calls `validateStruct` right after it unmarshals the merged Koanf
// tree.  Any failure aborts startup, so the binaries never run with a
// malformed endpoint, a zero clear delay, or a missing listen address.
//
// Rules in use: `required`, `url`, `hostname_port`, `gt`, and `gte`.

package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
