package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/consultready/consultready/internal/adapters/inbound/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation API over HTTP",
		Long:  "Start the HTTP API. Stops gracefully on SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpapi.New(a.catalog, a.evaluator, a.settings.BodyLimit, a.logger)
			return srv.Run(ctx, a.settings.HTTPAddr)
		},
	}

	cmd.Flags().String("http-addr", "", "Listen address (default :8080)")
	cmd.Flags().String("body-limit", "", "Maximum request body size (default 64K)")

	return cmd
}

