package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Catalog     CatalogConfig `mapstructure:"catalog"`
	Advisor     AdvisorConfig `mapstructure:"advisor"`
	Session     SessionConfig `mapstructure:"session"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CatalogConfig struct {
	Source string        `mapstructure:"source"`
	Path   string        `mapstructure:"path"`
	TTL    time.Duration `mapstructure:"ttl"`
	MySQL  MySQLConfig   `mapstructure:"mysql"`
}

type MySQLConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type AdvisorConfig struct {
	Provider string        `mapstructure:"provider"`
	URL      string        `mapstructure:"url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string `mapstructure:"url"`
	ReadTimeout  int    `mapstructure:"readTimeout"`
	WriteTimeout int    `mapstructure:"writeTimeout"`
	DialTimeout  int    `mapstructure:"dialTimeout"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// Every key has a default, so a missing config file is fine and the server
// starts with the demo settings.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.qoozee/")
	v.AddConfigPath("/etc/qoozee/")

	// Enable environment variable override with QOOZEE_ prefix
	v.SetEnvPrefix("QOOZEE")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("catalog.source", "csv")
	v.SetDefault("catalog.path", "products.csv")
	v.SetDefault("catalog.ttl", "60s")
	v.SetDefault("catalog.mysql.maxOpenConns", 10)
	v.SetDefault("advisor.provider", "ollama")
	v.SetDefault("advisor.url", "http://localhost:11434")
	v.SetDefault("advisor.model", "llama3.2")
	v.SetDefault("advisor.timeout", "10s")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.redis.readTimeout", 3)
	v.SetDefault("session.redis.writeTimeout", 3)
	v.SetDefault("session.redis.dialTimeout", 5)
}
