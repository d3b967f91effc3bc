package config

// Config represents the complete configuration structure
type Config struct {
	Giphy   GiphyConfig   `mapstructure:"giphy"`
	Search  SearchConfig  `mapstructure:"search"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GiphyConfig holds API connection details
type GiphyConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	Timeout   int    `mapstructure:"timeout"`
	Rendition string `mapstructure:"rendition"`
}

// SearchConfig contains default request parameters
type SearchConfig struct {
	Limit     int    `mapstructure:"limit"`
	Rating    string `mapstructure:"rating"`
	Lang      string `mapstructure:"lang"`
	MediaType string `mapstructure:"media_type"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
