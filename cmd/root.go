package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cfgpkg "github.com/elizabeth-dyson/tidytuesday-tuition/internal/config"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Source flags (override config if set)
	flagDataDir        string
	flagBaseURL        string
	flagHTTPTimeoutSec int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tuitiondash",
	Short: "College tuition, diversity and salary dashboard",
	Long: `tuitiondash loads the tidytuesday college tuition datasets, joins them and
derives the data behind four dashboard pages: diversity, salary potential,
tuition cost by income level and a per-state map. Pages can be printed,
exported, plotted or served over HTTP.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tuitiondash/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "read <dataset>.csv files from this directory instead of fetching them")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "base URL the dataset CSVs are fetched from (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: every setting has a default
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if f.Changed("base-url") && flagBaseURL != "" {
		cfg.DataBaseURL = flagBaseURL
	}
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
	if debug {
		cfg.LogLevel = "debug"
	}
}

// newLogger builds the process logger from config. Logs go to stderr so
// stdout stays clean for page output.
func newLogger(c *cfgpkg.Global, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	if c.LogFormat != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// commandContext returns the command context with the logger attached.
func commandContext(cmd *cobra.Command) (context.Context, zerolog.Logger) {
	log := newLogger(cfg, cmd.ErrOrStderr())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return log.WithContext(ctx), log
}

// source picks the local mirror when one is configured, else the remote.
func source(c *cfgpkg.Global) dataset.Source {
	if c.DataDir != "" {
		return dataset.DirSource(c.DataDir)
	}
	return dataset.NewHTTPSource(c.DataBaseURL, time.Duration(c.HTTPTimeoutSec)*time.Second)
}
