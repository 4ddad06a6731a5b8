package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rvpanel/internal/config"
	"github.com/jmylchreest/rvpanel/internal/desktop"
	"github.com/jmylchreest/rvpanel/internal/session"
	"github.com/jmylchreest/rvpanel/internal/tui"
)

var tuiOpts struct {
	origin  string
	noWatch bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui <page-url>",
	Short: "Launch the interactive Remote View panel",
	Long: `Launch the Remote View panel for a page.

The panel checks for an existing session when it opens. Flip the toggle to
create a public URL for the page origin, flip it again to close the session.
Pages must use the http, https or file protocol.

Key bindings:
  space/enter/t  Toggle Remote View
  l              Learn more about Remote View
  esc            Close the description
  ?              Show help
  q              Quit

Mouse clicks on the toggle row and on "Learn more" are supported too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiOpts.origin, "origin", "",
		"Session origin (derived from the page URL if empty)")
	tuiCmd.Flags().BoolVar(&tuiOpts.noWatch, "no-watch", false,
		"Do not reload the theme when the config file changes")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	// The panel owns the terminal, so logs go to a file.
	if err := config.EnsureStateDir(); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	logFile, err := os.OpenFile(config.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	setupLogger(logFile)

	requester, release := newRequester()
	defer release()

	opts := tui.Options{
		Config:    cfg,
		Page:      session.Page{URL: args[0], Origin: tuiOpts.origin},
		Requester: requester,
		Logger:    logger,
	}
	if cfg.Desktop.Notify {
		opts.Desktop = desktop.NewNotifier("rvpanel", logger)
	}

	configPath := globalOpts.configPath
	if configPath == "" {
		configPath = config.ConfigPath()
	}

	return tui.Run(tui.RunOptions{
		Options:     opts,
		ConfigPath:  configPath,
		WatchConfig: !tuiOpts.noWatch,
	})
}
