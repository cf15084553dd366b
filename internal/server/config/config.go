// Package config handles configuration for the server component, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the notekeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DataDir: directory for the file-per-user record store.
//   - DatabaseDSN: PostgreSQL DSN (pgx); when set, records are stored in the
//     database instead of DataDir.
//   - TrustchainID / TrustchainSecret: identity and HMAC secret used to sign
//     the session tokens handed out at signup. Do not use the dev defaults
//     in production.
//   - ShutdownTimeout: how long a graceful HTTP shutdown may take.
type Config struct {
	EndpointAddr     string
	DataDir          string
	DatabaseDSN      string
	TrustchainID     string
	TrustchainSecret string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DataDir = "./data"
	c.DatabaseDSN = ""
	c.TrustchainID = "notepad-dev"
	c.TrustchainSecret = "trustchainSecret"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
