// internal/config/model.go
//
// Typed configuration model for the site engine.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • `conf/global.yaml`                       – primary static file,
//   • `WASATCH_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the secrets client *before* validation, so the model never
// stores Vault URIs—only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml`
//     tags unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
	BaseURL    string `koanf:"base_url" validate:"omitempty,url"` // canonical scheme+host
}

//
// Database section
//

// Database holds the content-database DSN.  An empty DSN disables the
// database tier entirely: the site then serves from the static catalog
// alone, which is a supported deployment mode.
type Database struct {
	DSN string `koanf:"dsn"`
}

//
// Catalog section
//

// Catalog points at the landing-page CSV export.
type Catalog struct {
	CSVPath string `koanf:"csv_path" validate:"required"`
}

//
// Content section
//

// Content configures the curated YAML catalog and region templating.
type Content struct {
	Dir         string `koanf:"dir" validate:"required"`
	RegionToken string `koanf:"region_token"` // "" → content.DefaultRegionToken
}

//
// Resolve section
//

// Resolve tunes the resolution pipeline.
type Resolve struct {
	FuzzyThreshold float64 `koanf:"fuzzy_threshold" validate:"gte=0,lte=1"` // 0 → matcher default
	DBTimeoutMS    int     `koanf:"db_timeout_ms" validate:"gte=0"`         // 0 → page default
}

//
// Lead section
//

// Lead configures lead capture.  The webhook URL is usually a `vault:`
// reference in YAML.
type Lead struct {
	WebhookURL string `koanf:"webhook_url" validate:"omitempty,url"`
}

//
// Geo section
//

// Geo points at the optional GeoLite2-City database used for visitor
// city hints.  Empty path disables geolocation.
type Geo struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or WASATCH_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Catalog  Catalog  `koanf:"catalog"`
	Content  Content  `koanf:"content"`
	Resolve  Resolve  `koanf:"resolve"`
	Lead     Lead     `koanf:"lead"`
	Geo      Geo      `koanf:"geo"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
