package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string    `mapstructure:"service_name"`
	Env         string    `mapstructure:"env"`
	Port        string    `mapstructure:"port"`
	Gateway     Gateway   `mapstructure:"gateway"`
	Catalog     Catalog   `mapstructure:"catalog"`
	Redis       Redis     `mapstructure:"redis"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
}

type Gateway struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Catalog configures where the selectable payment methods come from.
// Source is "static" for the built-in list or "http" for an upstream catalog.
type Catalog struct {
	Source          string `mapstructure:"source"`
	URL             string `mapstructure:"url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

type Redis struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

type Telemetry struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	configDir := filepath.Join(filepath.Dir(filename))
	viper.SetConfigName(getConfigName())
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	// Allow environment variables to override config
	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHECKOUT")

	setDefaultsFromEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaultsFromEnv() {
	viper.SetDefault("service_name", "checkout-service")
	viper.SetDefault("env", getEnv("ENV", "local"))
	viper.SetDefault("port", getEnv("PORT", "8080"))

	viper.SetDefault("gateway.url", getEnv("PAYMENTS_GATEWAY_URL", "http://localhost:8081"))
	viper.SetDefault("gateway.timeout_seconds", 10)

	viper.SetDefault("catalog.source", getEnv("CATALOG_SOURCE", "static"))
	viper.SetDefault("catalog.url", getEnv("CATALOG_URL", "http://localhost:8082"))
	viper.SetDefault("catalog.timeout_seconds", 10)
	viper.SetDefault("catalog.cache_ttl_seconds", 300)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", getEnv("REDIS_HOST", "localhost"))
	viper.SetDefault("redis.port", 6379)

	viper.SetDefault("telemetry.otlp_endpoint", getEnv("OTLP_ENDPOINT", "localhost:4318"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
