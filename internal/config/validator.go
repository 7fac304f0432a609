// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any tag
// mismatch or validation error aborts startup, ensuring the binary never
// runs with partial, malformed, or missing configuration.
//
// Rules in use: `required` on the catalog and content paths and the
// listen address, `url` on the canonical base URL and lead webhook, and
// range checks on the resolver tunables.  Custom rules can be registered
// here as the configuration surface grows.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
