package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Fetcher  FetcherConfig  `mapstructure:"fetcher"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// TelegramConfig holds bot transport configuration
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	AdminID        int64         `mapstructure:"admin_id"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
	Debug          bool          `mapstructure:"debug"`
}

// FetcherConfig holds account-fetching configuration
type FetcherConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig holds usage-statistics persistence configuration
type StorageConfig struct {
	FilePath            string        `mapstructure:"file_path"`
	PersistenceInterval time.Duration `mapstructure:"persistence_interval"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvPrefix("ACCOUNTLENS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Telegram defaults
	v.SetDefault("telegram.max_retries", 3)
	v.SetDefault("telegram.retry_delay_base", "1s")
	v.SetDefault("telegram.debug", false)

	// Fetcher defaults
	v.SetDefault("fetcher.timeout", "30s")

	// Storage defaults
	v.SetDefault("storage.file_path", "") // empty = OS tmp directory
	v.SetDefault("storage.persistence_interval", "5m")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.MaxRetries < 1 {
		return fmt.Errorf("telegram.max_retries must be at least 1")
	}
	if c.Telegram.RetryDelayBase <= 0 {
		return fmt.Errorf("telegram.retry_delay_base must be positive")
	}

	if c.Fetcher.Timeout < 1*time.Second {
		return fmt.Errorf("fetcher.timeout must be at least 1 second")
	}

	if c.Storage.PersistenceInterval < 1*time.Minute {
		return fmt.Errorf("storage.persistence_interval must be at least 1 minute")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
