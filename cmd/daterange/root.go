// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads the config file and builds the shared logger before every command

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/config"
	"github.com/harper/daterange/internal/dateutil"
	"github.com/harper/daterange/internal/logging"
	"github.com/harper/daterange/internal/picker"
	"github.com/harper/daterange/internal/timeutil"
)

var (
	logLevel string
	cfg      *config.Config
	logger   *log.Logger

	// nowFunc is the clock behind "today". Tests replace it.
	nowFunc = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "daterange",
	Short: "Two-month date range picker for terminals and AI agents",
	Long: `daterange picks a span of days from two side-by-side month calendars.

Pick interactively with mouse or keyboard, apply shortcuts such as
"Last 7 days", list the weekends inside a range, or serve the same
operations to AI agents over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(os.Stderr, resolvedLogLevel())
		if err != nil {
			return err
		}
		logger.Debug("config loaded", "path", config.GetConfigPath())
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config, else info)")
}

func currentConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func resolvedLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return currentConfig().GetLogLevel()
}

// pickerOptions returns picker options from the loaded config.
func pickerOptions() picker.Options {
	c := currentConfig()
	return picker.Options{
		PredefinedRanges: c.GetPredefinedRanges(),
		Layout:           c.GetDateFormat(),
		Now:              nowFunc,
		Logger:           logger,
	}
}

// clockFor returns a clock pinned to day, or nowFunc when day is empty.
func clockFor(day string) (func() time.Time, error) {
	if day == "" {
		return nowFunc, nil
	}
	d, err := timeutil.ParseDay(day, nowFunc())
	if err != nil {
		return nil, err
	}
	return timeutil.Clock(d), nil
}

// parseOptionalDate parses a YYYY-MM-DD flag value; empty means unset.
func parseOptionalDate(s string) (dateutil.Date, error) {
	if s == "" {
		return dateutil.Date{}, nil
	}
	return dateutil.ParseDate(s)
}
