package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Giphy: GiphyConfig{
			BaseURL: "https://api.giphy.com/v1",
			APIKey:  "valid-api-key",
		},
		Search: SearchConfig{
			Limit:     25,
			Rating:    "g",
			Lang:      "en",
			MediaType: "gif",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.Giphy.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(c *Config) { c.Giphy.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.Giphy.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "limit too small",
			mutate:  func(c *Config) { c.Search.Limit = 0 },
			wantErr: true,
		},
		{
			name:    "limit too large",
			mutate:  func(c *Config) { c.Search.Limit = 500 },
			wantErr: true,
		},
		{
			name:    "invalid media type",
			mutate:  func(c *Config) { c.Search.MediaType = "movie" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`giphy:
  api_key: test-key
search:
  limit: 10
  rating: pg
logging:
  level: debug
filter:
  cats: contains(Media.Title, "cat")
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Giphy.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.Giphy.APIKey, "test-key")
	}
	if cfg.Giphy.BaseURL != "https://api.giphy.com/v1" {
		t.Errorf("BaseURL default not applied, got %q", cfg.Giphy.BaseURL)
	}
	if cfg.Search.Limit != 10 {
		t.Errorf("Limit = %d, want 10", cfg.Search.Limit)
	}
	if cfg.Search.Rating != "pg" {
		t.Errorf("Rating = %q, want %q", cfg.Search.Rating, "pg")
	}
	if cfg.Search.Lang != "en" {
		t.Errorf("Lang default not applied, got %q", cfg.Search.Lang)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if got := cfg.Filter["cats"]; got != `contains(Media.Title, "cat")` {
		t.Errorf("Filter preset = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`giphy:
  api_key: ""
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for empty api_key")
	}
}
