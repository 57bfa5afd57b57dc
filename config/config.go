package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when enrichment is enabled without a Claude API key.
var ErrMissingAPIKey = errors.New("claude.api_key (CLAUDE_API_KEY) is required when enrichment is enabled")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task enrichment
	Claude     ClaudeConfig
	Enrichment EnrichmentConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type HTTPServerConfig struct {
	Port            int    `validate:"required,gt=0,lt=65536"`
	Mode            string `validate:"required,oneof=debug release test"`
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string `validate:"required,oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"required"`
	Encoding     string `validate:"required,oneof=console json"`
	ColorEnabled bool
}

// ClaudeConfig configures the completion API used for enrichment.
type ClaudeConfig struct {
	APIKey    string
	BaseURL   string `validate:"omitempty,url"`
	Model     string
	MaxTokens int `validate:"gte=0"`
}

// EnrichmentConfig tunes best-effort task enrichment.
type EnrichmentConfig struct {
	Enabled    bool
	Timeout    time.Duration `validate:"gte=0"`
	CacheSize  int           `validate:"gte=0"`
	CacheTTL   time.Duration `validate:"gte=0"`
	RatePerMin int           `validate:"gte=0"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load("./config", ".", "/etc/app/")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Claude
	cfg.Claude.APIKey = v.GetString("claude.api_key")
	cfg.Claude.BaseURL = v.GetString("claude.base_url")
	cfg.Claude.Model = v.GetString("claude.model")
	cfg.Claude.MaxTokens = v.GetInt("claude.max_tokens")

	// Enrichment
	cfg.Enrichment.Enabled = v.GetBool("enrichment.enabled")
	cfg.Enrichment.Timeout = v.GetDuration("enrichment.timeout")
	cfg.Enrichment.CacheSize = v.GetInt("enrichment.cache_size")
	cfg.Enrichment.CacheTTL = v.GetDuration("enrichment.cache_ttl")
	cfg.Enrichment.RatePerMin = v.GetInt("enrichment.rate_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Enrichment.Enabled && cfg.Claude.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("claude.base_url", "https://api.anthropic.com/v1")
	v.SetDefault("claude.model", "claude-2")
	v.SetDefault("claude.max_tokens", 150)

	v.SetDefault("enrichment.enabled", true)
	v.SetDefault("enrichment.timeout", "10s")
	v.SetDefault("enrichment.cache_size", 256)
	v.SetDefault("enrichment.cache_ttl", "10m")
	v.SetDefault("enrichment.rate_per_min", 60)
}
