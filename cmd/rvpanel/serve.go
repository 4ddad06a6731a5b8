package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/rvpanel/internal/transport"
)

var serveOpts struct {
	addr   string
	path   string
	domain string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a development Remote View service",
	Long: `Run a WebSocket service that answers Remote View requests from an
in-memory session registry. It speaks the same protocol as the LiveStyle
app, so the panel can be tried without it:

  rvpanel serve &
  rvpanel --url ws://127.0.0.1:54000/livestyle http://localhost:8080/

Sessions are not forwarded anywhere; the public URLs it hands out are
placeholders. Prometheus metrics are served at /metrics.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "",
		"Listen address (default from config)")
	serveCmd.Flags().StringVar(&serveOpts.path, "path", "",
		"WebSocket endpoint path (default from config)")
	serveCmd.Flags().StringVar(&serveOpts.domain, "domain", "",
		"Domain public session IDs are issued under (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := firstNonEmpty(serveOpts.addr, cfg.Serve.Addr)
	path := firstNonEmpty(serveOpts.path, cfg.Serve.Path)
	domain := firstNonEmpty(serveOpts.domain, cfg.Serve.Domain)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	local := transport.NewLocal(domain)
	metrics := transport.NewMetrics()
	metrics.WatchSessions(local.Sessions)

	server := transport.NewServer(local, logger, transport.WithMetrics(metrics))
	cmd.PrintErrf("Serving Remote View on ws://%s%s (sessions under %s)\n", addr, path, domain)

	if err := server.ListenAndServe(ctx, addr, path); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
