// Package config handles loading and validating the balsas configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the balsas daemon.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Provider  ProviderConfig  `mapstructure:"provider"`
	Synthesis SynthesisConfig `mapstructure:"synthesis"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port    int `mapstructure:"port"`     // API: /synthesize, /voices, /health
	OpsPort int `mapstructure:"ops_port"` // ops: /healthz, /readyz, /metrics
}

// ProviderConfig selects and configures the speech provider backend.
type ProviderConfig struct {
	Backend string      `mapstructure:"backend"` // "azure"
	Azure   AzureConfig `mapstructure:"azure"`
}

// AzureConfig holds Azure Cognitive Services speech settings.
type AzureConfig struct {
	// Key is the subscription key. Supports "${VAR}" environment references;
	// defaults to "${AZURE_SPEECH_KEY}".
	Key string `mapstructure:"key"`

	// Region selects the service endpoint (e.g., "westeurope").
	Region string `mapstructure:"region"`

	// Timeout is the upper bound on a single synthesis call.
	Timeout time.Duration `mapstructure:"timeout"`
}

// SynthesisConfig holds the defaults applied to incoming requests.
type SynthesisConfig struct {
	DefaultVoice string `mapstructure:"default_voice"`
	DefaultRate  string `mapstructure:"default_rate"`
	DefaultPitch string `mapstructure:"default_pitch"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// CredentialPresent reports whether a provider credential was resolved.
func (c *Config) CredentialPresent() bool {
	return c.Provider.Azure.Key != ""
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./balsas.yaml, ./configs/balsas.yaml, /etc/balsas/balsas.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ops_port", 8081)
	v.SetDefault("provider.backend", "azure")
	v.SetDefault("provider.azure.key", "${AZURE_SPEECH_KEY}")
	v.SetDefault("provider.azure.region", "westeurope")
	v.SetDefault("provider.azure.timeout", "30s")
	v.SetDefault("synthesis.default_voice", "lt-LT-LeonasNeural")
	v.SetDefault("synthesis.default_rate", "0%")
	v.SetDefault("synthesis.default_pitch", "0%")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("balsas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/balsas")
	}

	// Environment variables: BALSAS_SERVER_PORT, BALSAS_PROVIDER_AZURE_REGION, etc.
	v.SetEnvPrefix("BALSAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${AZURE_SPEECH_KEY}")
	cfg.Provider.Azure.Key = resolveEnvRef(cfg.Provider.Azure.Key)

	return &cfg, nil
}

// resolveEnvRef replaces a "${VAR_NAME}" value with the corresponding env var.
// An unset reference resolves to the empty string so a missing credential is
// detectable rather than masquerading as a literal "${...}" key.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
