// Package main provides the CLI entrypoint for rvpanel.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rvpanel/internal/config"
	"github.com/jmylchreest/rvpanel/internal/session"
	"github.com/jmylchreest/rvpanel/internal/transport"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		serviceURL string
		demo       bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rvpanel [page-url]",
	Short: "LiveStyle Remote View panel for the terminal",
	Long: `rvpanel shows the LiveStyle Remote View panel for a page.

Remote View creates a publicly available URL that points to your local
web-site. rvpanel talks to the LiveStyle app to check, create and close
Remote View sessions for the origin of the page.

Running rvpanel without a subcommand launches the interactive panel.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(os.Stderr)

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalOpts.serviceURL != "" {
			cfg.Service.URL = globalOpts.serviceURL
		}
		return nil
	},
	// Default to TUI when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/rvpanel/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.serviceURL, "url", "",
		"LiveStyle app WebSocket URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.demo, "demo", false,
		"Use an in-process session registry instead of the LiveStyle app")
}

// setupLogger configures the global slog logger.
func setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newRequester returns the requester for the LiveStyle app, or an in-process
// registry in demo mode. The returned function releases it.
func newRequester() (transport.Requester, func()) {
	if globalOpts.demo {
		return transport.NewLocal(cfg.Serve.Domain), func() {}
	}

	client := transport.NewClient(cfg.Service.URL,
		transport.WithTimeout(cfg.Service.Timeout.Duration()),
		transport.WithLogger(logger),
	)
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Debug("failed to close client", "error", err)
		}
	}
}

func requestTimeout() time.Duration {
	if d := cfg.Service.Timeout.Duration(); d > 0 {
		return d
	}
	return transport.DefaultTimeout
}

// resolvePage builds the page description and its session origin from the
// page argument and an optional origin override.
func resolvePage(args []string, origin string) (session.Page, string, error) {
	if len(args) == 0 {
		return session.Page{}, "", fmt.Errorf("page URL is required")
	}
	page := session.Page{URL: args[0], Origin: origin}

	if origin == "" {
		u, err := url.Parse(page.URL)
		if err != nil {
			return page, "", fmt.Errorf("invalid page URL %q: %w", page.URL, err)
		}
		if !session.SupportedScheme(u.Scheme) {
			return page, "", fmt.Errorf("remote view is not available for %s: pages", u.Scheme)
		}
		origin = session.Origin(u)
	}
	if origin == "" {
		return page, "", fmt.Errorf("unable to get URL origin for %s", page.URL)
	}
	return page, origin, nil
}
