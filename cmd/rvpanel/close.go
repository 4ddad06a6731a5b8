package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rvpanel/internal/model"
)

var closeOpts struct {
	origin string
}

var closeCmd = &cobra.Command{
	Use:   "close <page-url>",
	Short: "Close the Remote View session for a page",
	Long: `Ask the LiveStyle app to close the Remote View session for the origin
of a page. The request is not acknowledged; closing an origin without a
session does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)

	closeCmd.Flags().StringVar(&closeOpts.origin, "origin", "",
		"Session origin (derived from the page URL if empty)")
}

func runClose(cmd *cobra.Command, args []string) error {
	_, origin, err := resolvePage(args, closeOpts.origin)
	if err != nil {
		return err
	}

	requester, release := newRequester()
	defer release()

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()

	if err := requester.Notify(ctx, model.RequestCloseSession, model.Payload{LocalSite: origin}); err != nil {
		return fmt.Errorf("failed to close session for %s: %w", origin, err)
	}

	logger.Info("session close requested", "origin", origin)
	return nil
}
