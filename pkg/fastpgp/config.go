package fastpgp

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fastpgp/fastpgp-go/internal/bindings"
)

// Strategy selects how calls cross the boundary. It is fixed for the lifetime
// of a Bridge.
type Strategy string

const (
	// StrategyDirect hands the payload to a synchronous in-process engine.
	StrategyDirect Strategy = "direct"
	// StrategyArray sends the payload as an integer array to an asynchronous
	// endpoint.
	StrategyArray Strategy = "array"
)

// Backend names the concrete engine behind a strategy.
type Backend string

const (
	// BackendNative calls the cgo-linked engine library (direct).
	BackendNative Backend = "native"
	// BackendWasm calls a WebAssembly build of the engine (direct).
	BackendWasm Backend = "wasm"
	// BackendEmbedded calls the Go reference engine in-process (direct).
	BackendEmbedded Backend = "embedded"
	// BackendNATS sends requests to an engine responder over NATS (array).
	BackendNATS Backend = "nats"
	// BackendLoopback feeds the Go reference engine through the array
	// strategy without leaving the process (array).
	BackendLoopback Backend = "loopback"
)

const (
	// DefaultSubject is the NATS subject the engine responder listens on.
	DefaultSubject = "fastpgp.bridge"

	defaultNATSURL     = "nats://127.0.0.1:4222"
	defaultNATSTimeout = 30 * time.Second
	defaultLogLevel    = "info"
)

// NATSConfig holds the settings of the NATS array endpoint.
type NATSConfig struct {
	URL     string
	Subject string
	Timeout time.Duration
}

// Config expresses how a Bridge reaches its engine.
type Config struct {
	Strategy Strategy
	Backend  Backend

	// WasmPath is the engine module loaded by BackendWasm.
	WasmPath string

	// HomeDir is handed to the native library for scratch files. Leaving it
	// empty lets the library pick its own.
	HomeDir string

	NATS     NATSConfig
	LogLevel string
}

// NewDefaultConfig returns a Config that runs the embedded engine through the
// direct strategy.
func NewDefaultConfig() *Config {
	return &Config{
		Strategy: StrategyDirect,
		Backend:  BackendEmbedded,
		NATS: NATSConfig{
			URL:     defaultNATSURL,
			Subject: DefaultSubject,
			Timeout: defaultNATSTimeout,
		},
		LogLevel: defaultLogLevel,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("FASTPGP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewConfig creates a Config with default settings and applies settings from
// the given YAML file and from FASTPGP_* environment variables. A missing
// file yields the defaults plus environment overrides.
func NewConfig(configFile string) (*Config, error) {
	v := newViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	config := NewDefaultConfig()
	if v.IsSet("strategy") {
		config.Strategy = Strategy(strings.ToLower(v.GetString("strategy")))
	}
	if v.IsSet("backend") {
		config.Backend = Backend(strings.ToLower(v.GetString("backend")))
	}
	if v.IsSet("wasm.path") {
		config.WasmPath = v.GetString("wasm.path")
	}
	if v.IsSet("home.dir") {
		config.HomeDir = v.GetString("home.dir")
	}
	if v.IsSet("nats.url") {
		config.NATS.URL = v.GetString("nats.url")
	}
	if v.IsSet("nats.subject") {
		config.NATS.Subject = v.GetString("nats.subject")
	}
	if v.IsSet("nats.timeout") {
		config.NATS.Timeout = v.GetDuration("nats.timeout")
	}
	if v.IsSet("log.level") {
		config.LogLevel = v.GetString("log.level")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the backend belongs to the strategy.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyDirect:
		switch c.Backend {
		case BackendNative, BackendEmbedded:
		case BackendWasm:
			if c.WasmPath == "" {
				return errors.New("wasm backend requires wasm.path")
			}
		default:
			return fmt.Errorf("backend %q cannot serve the direct strategy", c.Backend)
		}
	case StrategyArray:
		switch c.Backend {
		case BackendLoopback:
		case BackendNATS:
			if c.NATS.URL == "" {
				return errors.New("nats backend requires nats.url")
			}
			if c.NATS.Subject == "" {
				return errors.New("nats backend requires nats.subject")
			}
		default:
			return fmt.Errorf("backend %q cannot serve the array strategy", c.Backend)
		}
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	return nil
}

func (c Config) toBindings() bindings.Config {
	return bindings.Config{HomeDir: c.HomeDir}
}
