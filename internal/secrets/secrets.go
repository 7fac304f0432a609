// internal/secrets/secrets.go
//
// Vault-backed secret resolution.
//
// Context
// -------
//   - Wraps the HashiCorp Vault Go SDK behind the one operation the
//     config loader needs: turning a `vault:` reference into its secret
//     string.
//   - References use the form `vault:<mount>/<path>#<key>`, e.g.
//     `vault:kv/siteengine/prod#content_dsn`.
//   - Resolved values are cached per reference for the process lifetime;
//     config reloads hit the cache, not the Vault server.
//
// Public workflow
// ---------------
//  1. cli, err := secrets.New(ctx)              // lazily, on first ref.
//  2. val, err := cli.Resolve(ctx, ref)         // from the config loader.
//
// Environment expectations
// ------------------------
// • VAULT_ADDR   – scheme and host of the Vault server.
// • VAULT_TOKEN  – initial token (falls back to ~/.vault-token).
package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	vault "github.com/hashicorp/vault/api"
)

// RefPrefix marks a config value as a Vault reference.
const RefPrefix = "vault:"

// IsRef reports whether a config value names a secret.
func IsRef(s string) bool { return strings.HasPrefix(s, RefPrefix) }

// Client is safe for concurrent use.  Zero value is invalid; construct
// with New.
type Client struct {
	api *vault.Client

	cacheMu sync.RWMutex
	cache   map[string]string // ref → resolved value
}

// New constructs a Vault client from the standard environment.
func New(_ context.Context) (*Client, error) {
	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}

	apiCli, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		apiCli.SetToken(tok)
	}

	return &Client{api: apiCli, cache: make(map[string]string)}, nil
}

// Resolve turns a `vault:` reference into its secret string.
func (c *Client) Resolve(ctx context.Context, ref string) (string, error) {
	if !IsRef(ref) {
		return "", fmt.Errorf("secrets: %q is not a vault reference", ref)
	}

	c.cacheMu.RLock()
	if v, ok := c.cache[ref]; ok {
		c.cacheMu.RUnlock()
		return v, nil
	}
	c.cacheMu.RUnlock()

	secretPath, key, err := splitRef(ref)
	if err != nil {
		return "", err
	}

	mount, rel := splitMount(secretPath)
	sec, err := c.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return "", fmt.Errorf("vault get %s: %w", secretPath, err)
	}

	raw, ok := sec.Data[key]
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %q", key, secretPath)
	}
	val, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("value at %s#%s is not a string", secretPath, key)
	}

	c.cacheMu.Lock()
	c.cache[ref] = val
	c.cacheMu.Unlock()
	return val, nil
}

//
// helpers
//

// splitRef parses "vault:<mount>/<path>#<key>".
func splitRef(ref string) (secretPath, key string, err error) {
	body := strings.TrimPrefix(ref, RefPrefix)
	i := strings.LastIndexByte(body, '#')
	if i <= 0 || i == len(body)-1 {
		return "", "", fmt.Errorf("secrets: malformed reference %q (want vault:<path>#<key>)", ref)
	}
	return body[:i], body[i+1:], nil
}

func splitMount(p string) (mount, rel string) {
	parts := strings.SplitN(p, "/", 2)
	mount = parts[0]
	if len(parts) == 2 {
		rel = parts[1]
	}
	return
}
