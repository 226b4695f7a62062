package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	HACCP    HACCPConfig
	FoodQR   FoodQRConfig
	Database DatabaseConfig
	Upstream UpstreamConfig
	Log      LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// HACCPConfig holds HACCP certification registry configuration
type HACCPConfig struct {
	ServiceKey string        `mapstructure:"service_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// FoodQRConfig holds Food QR e-label registry configuration
type FoodQRConfig struct {
	AccessKey string        `mapstructure:"access_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig holds the local product store configuration
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "postgres"
	DSN    string `mapstructure:"dsn"`
}

// UpstreamConfig paces outbound registry requests
type UpstreamConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"` // empty: debug in development, info otherwise
}

// IsDevelopment reports whether verbose development behaviour is enabled
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration, reading path instead of searching when it is set
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/allergenlens/")
	}

	// ALLERGENLENS_HACCP_SERVICE_KEY -> haccp.service_key
	v.SetEnvPrefix("ALLERGENLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	applyPlatformEnv(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*", "http://localhost:*"})

	// Registry defaults
	v.SetDefault("haccp.service_key", "")
	v.SetDefault("haccp.base_url", "http://apis.data.go.kr/B553748/CertImgListServiceV3")
	v.SetDefault("haccp.timeout", "15s")
	v.SetDefault("foodqr.access_key", "")
	v.SetDefault("foodqr.base_url", "https://foodqr.kr/openapi/service")
	v.SetDefault("foodqr.timeout", "15s")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "products.db")

	// Upstream pacing defaults
	v.SetDefault("upstream.requests_per_second", 5)
	v.SetDefault("upstream.burst", 10)

	v.SetDefault("log.level", "")
}

// applyPlatformEnv honours the unprefixed variables hosting platforms set
func applyPlatformEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ALLERGENLENS_SERVER_PORT") == "" {
		config.Server.Port = port
	}
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("environment must be 'development', 'production' or 'test', got: %s", config.Server.Environment)
	}

	if config.Database.Driver != "sqlite" && config.Database.Driver != "postgres" {
		return fmt.Errorf("database driver must be 'sqlite' or 'postgres', got: %s", config.Database.Driver)
	}

	if config.Database.DSN == "" {
		return fmt.Errorf("database DSN is required (set ALLERGENLENS_DATABASE_DSN)")
	}

	if config.HACCP.Timeout <= 0 || config.FoodQR.Timeout <= 0 {
		return fmt.Errorf("registry timeouts must be positive")
	}

	if config.Upstream.RequestsPerSecond <= 0 || config.Upstream.Burst <= 0 {
		return fmt.Errorf("upstream requests_per_second and burst must be positive")
	}

	return nil
}
