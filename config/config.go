package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gifseek"))
		}

		// Check /etc
		v.AddConfigPath("/etc/gifseek/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("giphy.base_url", "https://api.giphy.com/v1")
	v.SetDefault("giphy.timeout", 30)
	v.SetDefault("giphy.rendition", "original")

	// Request defaults
	v.SetDefault("search.limit", 25)
	v.SetDefault("search.rating", "g")
	v.SetDefault("search.lang", "en")
	v.SetDefault("search.media_type", "gif")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Giphy.APIKey == "" || cfg.Giphy.APIKey == "your-api-key-here" {
		return fmt.Errorf("giphy.api_key must be set to a valid API key")
	}

	if cfg.Giphy.BaseURL == "" {
		return fmt.Errorf("giphy.base_url is required")
	}

	if cfg.Search.Limit < 1 || cfg.Search.Limit > 100 {
		return fmt.Errorf("search.limit must be between 1 and 100, got %d", cfg.Search.Limit)
	}

	validTypes := map[string]bool{
		"gif":     true,
		"sticker": true,
		"text":    true,
		"video":   true,
	}
	if !validTypes[cfg.Search.MediaType] {
		return fmt.Errorf("invalid search.media_type: %s", cfg.Search.MediaType)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
