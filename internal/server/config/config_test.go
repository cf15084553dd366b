package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, "./data", c.DataDir)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "notepad-dev", c.TrustchainID)
	assert.Equal(t, "trustchainSecret", c.TrustchainSecret)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":     ":9000",
		"data_dir":          "/var/lib/notekeeper",
		"trustchain_id":     "prod",
		"trustchain_secret": "s3cr3t",
		"shutdown_timeout":  "30s",
	})

	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9000", cfg.EndpointAddr)
	assert.Equal(t, "/var/lib/notekeeper", cfg.DataDir)
	assert.Equal(t, "prod", cfg.TrustchainID)
	assert.Equal(t, "s3cr3t", cfg.TrustchainSecret)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

// Fields absent from the JSON file keep their current values.
func Test_parseJson_PartialFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr": ":9000",
	})

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9000", cfg.EndpointAddr)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func Test_parseJson_NoFlagLeavesConfigAlone(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddr)
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("NOTEKEEPER_ADDRESS", ":7070")
	t.Setenv("NOTEKEEPER_DATA_DIR", "/srv/data")
	t.Setenv("NOTEKEEPER_DATABASE_DSN", "postgres://localhost/notekeeper")
	t.Setenv("NOTEKEEPER_SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("TRUSTCHAIN_ID", "env-chain")
	t.Setenv("TRUSTCHAIN_SECRET", "env-secret")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/notekeeper", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "env-chain", cfg.TrustchainID)
	assert.Equal(t, "env-secret", cfg.TrustchainSecret)
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", ":6060", "-f", "/tmp/records", "-i", "flag-chain", "-w", "15"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, "/tmp/records", cfg.DataDir)
	assert.Equal(t, "flag-chain", cfg.TrustchainID)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	// untouched flags keep their defaults
	assert.Equal(t, "trustchainSecret", cfg.TrustchainSecret)
}
