package fastpgp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fastpgp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig("")
	require.NoError(t, err)
	require.Equal(t, NewDefaultConfig(), config)
}

func TestNewConfigMissingFile(t *testing.T) {
	config, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, StrategyDirect, config.Strategy)
	require.Equal(t, BackendEmbedded, config.Backend)
}

func TestNewConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
strategy: ARRAY
backend: nats
nats:
  url: nats://engine:4222
  subject: pgp.requests
  timeout: 5s
log:
  level: debug
home:
  dir: /var/lib/fastpgp
`)
	config, err := NewConfig(path)
	require.NoError(t, err)
	require.Equal(t, StrategyArray, config.Strategy)
	require.Equal(t, BackendNATS, config.Backend)
	require.Equal(t, "nats://engine:4222", config.NATS.URL)
	require.Equal(t, "pgp.requests", config.NATS.Subject)
	require.Equal(t, 5*time.Second, config.NATS.Timeout)
	require.Equal(t, "debug", config.LogLevel)
	require.Equal(t, "/var/lib/fastpgp", config.HomeDir)
	require.Equal(t, "/var/lib/fastpgp", config.toBindings().HomeDir)
}

func TestNewConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("FASTPGP_STRATEGY", "array")
	t.Setenv("FASTPGP_BACKEND", "loopback")
	t.Setenv("FASTPGP_LOG_LEVEL", "warn")

	config, err := NewConfig(writeConfig(t, "backend: embedded\n"))
	require.NoError(t, err)
	require.Equal(t, BackendLoopback, config.Backend)
	require.Equal(t, StrategyArray, config.Strategy)
	require.Equal(t, "warn", config.LogLevel)
}

func TestNewConfigInvalidYAML(t *testing.T) {
	_, err := NewConfig(writeConfig(t, "strategy: [unterminated\n"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := []Config{
		{Strategy: StrategyDirect, Backend: BackendEmbedded},
		{Strategy: StrategyDirect, Backend: BackendNative},
		{Strategy: StrategyDirect, Backend: BackendWasm, WasmPath: "engine.wasm"},
		{Strategy: StrategyArray, Backend: BackendLoopback},
		{Strategy: StrategyArray, Backend: BackendNATS, NATS: NATSConfig{URL: "nats://x", Subject: "s"}},
	}
	for _, c := range valid {
		require.NoError(t, c.Validate(), "%s/%s", c.Strategy, c.Backend)
	}

	invalid := []Config{
		{Strategy: "sideways", Backend: BackendEmbedded},
		{Strategy: StrategyDirect, Backend: BackendNATS},
		{Strategy: StrategyArray, Backend: BackendEmbedded},
		{Strategy: StrategyDirect, Backend: BackendWasm},
		{Strategy: StrategyArray, Backend: BackendNATS, NATS: NATSConfig{Subject: "s"}},
		{Strategy: StrategyArray, Backend: BackendNATS, NATS: NATSConfig{URL: "nats://x"}},
	}
	for _, c := range invalid {
		require.Error(t, c.Validate(), "%s/%s", c.Strategy, c.Backend)
	}
}
