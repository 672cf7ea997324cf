// Package config loads runtime settings from the environment, an optional .env file
// and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort          string
	DatabaseURL       string
	LogLevel          string
	JWTSecret         string
	JWTExpiresIn      time.Duration
	TraceCacheSize    int
	AdminEmail        string
	AdminPasswordHash string
}

// Defaults registers fallback values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("http_port", "8080")
	v.SetDefault("database_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_expires_in", "24h")
	v.SetDefault("trace_cache_size", 256)
	v.SetDefault("admin_email", "")
	v.SetDefault("admin_password_hash", "")
}

// New returns a viper instance that reads HTTP_PORT style variables.
func New() *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env (if present), then an optional config file, then the environment.
// Environment variables win over the file.
func Load(file string) (Config, error) {
	_ = godotenv.Load()
	v := New()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return FromViper(v)
}

func FromViper(v *viper.Viper) (Config, error) {
	ttl, err := time.ParseDuration(v.GetString("jwt_expires_in"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	size := v.GetInt("trace_cache_size")
	if size <= 0 {
		return Config{}, fmt.Errorf("TRACE_CACHE_SIZE must be positive, got %d", size)
	}
	return Config{
		HTTPPort:          v.GetString("http_port"),
		DatabaseURL:       v.GetString("database_url"),
		LogLevel:          v.GetString("log_level"),
		JWTSecret:         v.GetString("jwt_secret"),
		JWTExpiresIn:      ttl,
		TraceCacheSize:    size,
		AdminEmail:        v.GetString("admin_email"),
		AdminPasswordHash: v.GetString("admin_password_hash"),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.HTTPPort }
