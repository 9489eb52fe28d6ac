// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the ShopKeeper client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - CacheDSN: SQLite DSN of the local cache database.
//   - LocalOnly: when true, logins and registrations are served from the
//     local cache without consulting the remote directory.
//   - AdminEmail / AdminPasswordHash: the operator override credential;
//     the hash is an argon2id encoded string.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointAddr  string
	CacheDSN            string
	LocalOnly           bool
	AdminEmail          string
	AdminPasswordHash   string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CacheDSN = "shopkeeper.db"
	c.LocalOnly = false
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
