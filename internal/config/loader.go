// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file at `<root>/conf/.env`.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `WASATCH_`, where `__` maps to “.”
     (e.g., `WASATCH_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into strongly-typed structs,
`vault:` references are resolved through the secrets client, the result
is validated, enriched with the runtime root path, and cached in an
`atomic.Pointer` for lock-free reads.  `Reload()` simply calls `Load()`
again and swaps the pointer.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed.

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Secrets are resolved lazily: the Vault client is only constructed
    when at least one config value carries the `vault:` prefix.
*/
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/wasatchbuilt/siteengine/internal/secrets"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves WASATCH_ROOT or climbs directories until
// conf/global.yaml is found.  Falls back to executable heuristic for the
// production layout.
func rootDir() string {
	if r := os.Getenv("WASATCH_ROOT"); r != "" {
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

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves secrets, validates, and
// caches Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: WASATCH_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider("WASATCH_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	if err := resolveSecrets(&cfg); err != nil {
		zap.S().Errorw("config secret resolution failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root

	// Data paths in YAML are written relative to the project root so the
	// config stays portable; anchor them here, not at each open site.
	cfg.Catalog.CSVPath = absFromRoot(root, cfg.Catalog.CSVPath)
	cfg.Content.Dir = absFromRoot(root, cfg.Content.Dir)
	cfg.Geo.DBPath = absFromRoot(root, cfg.Geo.DBPath)

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"catalog_csv", cfg.Catalog.CSVPath,
		"db_tier", cfg.Database.DSN != "",
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

// absFromRoot anchors a relative path at the project root.  Empty and
// absolute paths pass through unchanged.
func absFromRoot(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

/*──────────────────────────── secrets ─────────────────────────────────────*/

// resolveSecrets replaces every `vault:` reference in the config with the
// secret it names.  The Vault client is constructed only when a reference
// exists, so static-only deployments never need a Vault server.
func resolveSecrets(cfg *Config) error {
	refs := []*string{&cfg.Database.DSN, &cfg.Lead.WebhookURL}

	var cli *secrets.Client
	for _, ref := range refs {
		if !secrets.IsRef(*ref) {
			continue
		}
		if cli == nil {
			var err error
			cli, err = secrets.New(context.Background())
			if err != nil {
				return err
			}
		}
		val, err := cli.Resolve(context.Background(), *ref)
		if err != nil {
			return err
		}
		*ref = val
	}
	return nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config  { return current.Load() }
func Reload() error { _, err := Load(); return err }
