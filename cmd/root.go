package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/gifseek/config"
	"github.com/s0up4200/gifseek/filter"
	"github.com/s0up4200/gifseek/giphy"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *giphy.Client

	// Command flags
	limitFlag     int
	offsetFlag    int
	ratingFlag    string
	langFlag      string
	mediaTypeFlag string
	filterExpr    string
	presetName    string
	jsonOut       bool

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gifseek",
	Short: "Search and explore Giphy from the command line",
	Long: `gifseek is a CLI for the Giphy API. It searches, lists trending items,
translates phrases into GIFs, walks the category tree and fetches items by ID,
with optional expression filters over the results.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build version for the version and upgrade commands.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Self-update needs neither config nor client
	if cmd.Name() == "upgrade" {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = giphy.NewClient(cfg.Giphy.APIKey, logger,
		giphy.WithBaseURL(cfg.Giphy.BaseURL),
		giphy.WithTimeout(time.Duration(cfg.Giphy.Timeout)*time.Second),
		giphy.WithRendition(cfg.Giphy.Rendition),
	)
	if err != nil {
		return fmt.Errorf("failed to create Giphy client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when requested and stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveMediaType returns the media type from the flag or the config default.
func resolveMediaType() giphy.MediaType {
	if mediaTypeFlag != "" {
		return giphy.MediaType(mediaTypeFlag)
	}
	return giphy.MediaType(cfg.Search.MediaType)
}

// resolveRating returns the rating from the flag or the config default.
func resolveRating() string {
	if ratingFlag != "" {
		return ratingFlag
	}
	return cfg.Search.Rating
}

// resolveLang returns the language from the flag or the config default.
func resolveLang() string {
	if langFlag != "" {
		return langFlag
	}
	return cfg.Search.Lang
}

// resolveLimit returns the limit from the flag or the config default.
func resolveLimit(cmd *cobra.Command) int {
	if cmd.Flags().Changed("limit") {
		return limitFlag
	}
	return cfg.Search.Limit
}

// resolveFilter builds the result filter from --filter or --preset. Returns
// nil when neither is given.
func resolveFilter() (*filter.Filter, error) {
	expression := filterExpr
	if expression == "" && presetName != "" {
		preset, ok := cfg.Filter[presetName]
		if !ok {
			return nil, fmt.Errorf("preset not found in config: %s", presetName)
		}
		expression = preset
	}
	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	logger.Debug().Str("filter", expression).Msg("Filtering results")
	return f, nil
}

// addListFlags registers the flags shared by the list-shaped commands.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 25, "maximum results to return")
	cmd.Flags().IntVarP(&offsetFlag, "offset", "o", 0, "result offset for paging")
	cmd.Flags().StringVarP(&ratingFlag, "rating", "r", "", "content rating (g, pg, pg-13, r)")
	cmd.Flags().StringVarP(&mediaTypeFlag, "media-type", "m", "", "media type (gif, sticker, text, video)")
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression over results")
	cmd.Flags().StringVarP(&presetName, "preset", "p", "", "use a preset filter from config")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
}
