package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/devgrill/repogrill/internal/app"
	"github.com/devgrill/repogrill/internal/assess"
	"github.com/devgrill/repogrill/internal/env"
	"github.com/devgrill/repogrill/internal/session"
)

// runApp builds the backend client and session controller, then launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog := newLogger(false)
	defer closeLog()

	client := assess.WithLogging(assess.NewHTTPClient(cfg), log)
	ctrl := session.NewController(session.NewStore(), client, log)

	return app.Run(ctrl)
}

// resolveConfig builds the backend config using the --api-url flag
// (highest priority), then environment variables, then defaults.
func resolveConfig(cmd *cobra.Command) (assess.Config, error) {
	cfg := assess.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		return assess.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger configures zerolog. While the TUI owns the terminal, stderr
// output would corrupt the screen, so logs go to REPOGRILL_LOG_FILE or
// nowhere. Headless commands log to stderr directly.
func newLogger(headless bool) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(strings.ToLower(env.GetEnv("REPOGRILL_LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}

	if headless {
		w := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), func() {}
	}

	if path := env.GetEnv("REPOGRILL_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			log := zerolog.New(f).Level(level).With().Timestamp().Logger()
			return log, func() { f.Close() }
		}
		fmt.Fprintln(os.Stderr, "cannot open log file:", err)
	}

	return zerolog.New(io.Discard), func() {}
}
