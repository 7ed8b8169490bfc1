package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/treehouse/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the sum calculator web server",
		Long:  "Start an HTTP server with a form that adds two numbers, a JSON API at /api/sum and Prometheus metrics at /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default "+web.DefaultAddr+")")

	return cmd
}

func runServe(parent context.Context, addr string) error {
	if addr == "" {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		addr = cfg.ListenAddr
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return web.NewServer().ListenAndServe(ctx, addr)
}
