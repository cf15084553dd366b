package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is honored first, matching how the demo deployments
// pass trustchain credentials around.
//
// Recognized variables:
//
//	NOTEKEEPER_ADDRESS           HTTP bind address
//	NOTEKEEPER_DATA_DIR          data directory for user records
//	NOTEKEEPER_DATABASE_DSN      PostgreSQL DSN
//	NOTEKEEPER_SHUTDOWN_TIMEOUT  graceful shutdown timeout (e.g. "5s")
//	TRUSTCHAIN_ID                trustchain id
//	TRUSTCHAIN_SECRET            trustchain signing secret
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("NOTEKEEPER_ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("NOTEKEEPER_DATA_DIR"); ok {
		config.DataDir = v
	}
	if v, ok := os.LookupEnv("NOTEKEEPER_DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("NOTEKEEPER_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.ShutdownTimeout = d
		}
	}
	if v, ok := os.LookupEnv("TRUSTCHAIN_ID"); ok {
		config.TrustchainID = v
	}
	if v, ok := os.LookupEnv("TRUSTCHAIN_SECRET"); ok {
		config.TrustchainSecret = v
	}
}
