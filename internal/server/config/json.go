package config

import (
	"encoding/json"
	"os"

	"notekeeper/internal/flagx"
	"notekeeper/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "5s" and integer nanoseconds. After
// unmarshalling, the fields that were present are copied into the runtime
// Config.
type JsonConfig struct {
	EndpointAddr     string          `json:"endpoint_addr"`
	DataDir          string          `json:"data_dir"`
	DatabaseDSN      string          `json:"database_dsn"`
	TrustchainID     string          `json:"trustchain_id"`
	TrustchainSecret string          `json:"trustchain_secret"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. Fields absent from the file keep their
// current values. If the file cannot be read or contains invalid JSON, the
// function panics: a broken config file should stop the process immediately.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.TrustchainID != "" {
		config.TrustchainID = c.TrustchainID
	}
	if c.TrustchainSecret != "" {
		config.TrustchainSecret = c.TrustchainSecret
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
