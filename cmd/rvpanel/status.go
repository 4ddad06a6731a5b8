package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rvpanel/internal/model"
	"github.com/jmylchreest/rvpanel/internal/output"
	"github.com/jmylchreest/rvpanel/internal/session"
	"github.com/jmylchreest/rvpanel/internal/transport"
)

var statusOpts struct {
	origin string
	format string
}

var statusCmd = &cobra.Command{
	Use:   "status <page-url>",
	Short: "Show the Remote View session for a page",
	Long: `Query the LiveStyle app for an active Remote View session for the
origin of a page and print it.

Output formats:
  plain  Human readable summary (default)
  json   One JSON object
  yaml   YAML document

The command exits with an error if the LiveStyle app cannot be reached.
A page without an active session is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusOpts.origin, "origin", "",
		"Session origin (derived from the page URL if empty)")
	statusCmd.Flags().StringVarP(&statusOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	page, origin, err := resolvePage(args, statusOpts.origin)
	if err != nil {
		return err
	}

	format := output.FormatType(statusOpts.format)
	switch format {
	case output.FormatPlain, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", statusOpts.format)
	}

	requester, release := newRequester()
	defer release()

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()

	resp, err := requester.Request(ctx, model.RequestGetSession, model.Payload{LocalSite: origin})
	if errors.Is(err, transport.ErrNoConnection) {
		return fmt.Errorf("no LiveStyle app at %s: %w", cfg.Service.URL, err)
	}
	if err != nil {
		logger.Debug("status request failed", "error", err)
		resp = transport.ResponseFromError(err)
	}

	href := ""
	if !resp.Failed() {
		localURL := session.LocalURL(origin, page.URL, cfg.Panel.LocalHost)
		href = session.PublicHref(resp.PublicID, localURL)
	}

	status := output.NewStatus(page.URL, origin, href, resp, time.Now())
	return output.NewFormatter(format).Format(os.Stdout, status)
}
