package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds all runtime configuration. Values come from a config
// file when present, environment variables, then defaults, in that order.
type ServerConfig struct {
	HTTPPort    string `mapstructure:"HTTP_PORT"`
	MongoURI    string `mapstructure:"MONGO_URI"`
	MongoDBName string `mapstructure:"MONGO_DB_NAME"`
	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogPretty   bool   `mapstructure:"LOG_PRETTY"`

	OtelServiceName string `mapstructure:"OTEL_SERVICE_NAME"`

	BcryptCost int `mapstructure:"BCRYPT_COST"`

	// SessionTimeoutMin is reserved for timeout-based expiry; the current
	// session operations never populate expires_at, so this only feeds the
	// read cache TTL fallback.
	SessionTimeoutMin   int `mapstructure:"SESSION_TIMEOUT_MIN"`
	SessionCacheTTLMin  int `mapstructure:"SESSION_CACHE_TTL_MIN"`
}

// LoadConfig reads configuration from file, environment variables, and defaults.
func LoadConfig() (*ServerConfig, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/design-genie/")
	v.AddConfigPath("$HOME/.design-genie")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("HTTP_PORT", "5000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017/design_genie_dev")
	v.SetDefault("MONGO_DB_NAME", "design_genie_dev")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", true)
	v.SetDefault("OTEL_SERVICE_NAME", "design-genie-backend")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("SESSION_TIMEOUT_MIN", 60)
	v.SetDefault("SESSION_CACHE_TTL_MIN", 15)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &cfg, nil
}
