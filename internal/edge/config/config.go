package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the edge server configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	TLS       TLSConfig       `mapstructure:"tls"`
	SEO       SEOConfig       `mapstructure:"seo"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds server settings
type ServerConfig struct {
	HTTPPort        int      `mapstructure:"http_port"`
	HTTPSPort       int      `mapstructure:"https_port"`
	DiagnosticsPort int      `mapstructure:"diagnostics_port"`
	SystemDomains   []string `mapstructure:"system_domains"`
}

// DatabaseConfig holds content store settings
type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Database    string `mapstructure:"database"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	SSLMode     string `mapstructure:"ssl_mode"`
	SQLLogLevel string `mapstructure:"sql_log_level"`
}

// TLSConfig holds TLS settings
type TLSConfig struct {
	AutoCert bool   `mapstructure:"auto_cert"`
	CertDir  string `mapstructure:"cert_dir"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
	Email    string `mapstructure:"email"`
}

// SEOConfig holds rendering settings
type SEOConfig struct {
	CacheMaxAge         int    `mapstructure:"cache_max_age"`
	DebugHeaders        bool   `mapstructure:"debug_headers"`
	Locale              string `mapstructure:"locale"`
	FallbackTitle       string `mapstructure:"fallback_title"`
	FallbackDescription string `mapstructure:"fallback_description"`
	AssetBase           string `mapstructure:"asset_base"`
}

// RateLimitConfig holds rate limiting settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	File   string `mapstructure:"file"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.http_port", 80)
	viper.SetDefault("server.https_port", 443)
	viper.SetDefault("server.diagnostics_port", 9090)
	viper.SetDefault("server.system_domains", []string{"ecombuildr.com", "myecombuildr.com"})

	// Database defaults (SQLite for easier local development)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.database", "edge.db")
	// PostgreSQL defaults (if driver is set to postgres)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.username", "edge")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.sql_log_level", "silent")

	// TLS defaults
	viper.SetDefault("tls.auto_cert", false)
	viper.SetDefault("tls.cert_dir", "/var/lib/ecombuildr-edge/certs")

	// SEO defaults
	viper.SetDefault("seo.cache_max_age", 180)
	viper.SetDefault("seo.debug_headers", true)
	viper.SetDefault("seo.locale", "en_US")
	viper.SetDefault("seo.fallback_title", "Loading...")
	viper.SetDefault("seo.fallback_description", "This page is loading.")
	viper.SetDefault("seo.asset_base", "")

	// Rate limit defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20.0)
	viper.SetDefault("rate_limit.burst", 40)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}
