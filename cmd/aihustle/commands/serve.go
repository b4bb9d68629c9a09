package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aihustle/internal/crypto"
	"aihustle/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			if addr == "" {
				addr = cfg.Server.Addr()
			}

			opts := server.Options{
				MaxBodyBytes:        cfg.Server.MaxContentLength,
				DefaultPerHour:      cfg.RateLimit.DefaultPerHour,
				StrategistPerMinute: cfg.RateLimit.StrategistPerMinute,
			}
			if cfg.Auth.RequireAPIKey {
				opts.APIKeyDigest = crypto.APIKeyDigest(cfg.Auth.APIKeySecret)
			}
			srv := server.New(opts, server.Agents{
				Builder:    appCtx.Builder,
				Outreach:   appCtx.Outreach,
				Strategist: appCtx.Strategist,
			}, appCtx.Log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, e.g. 0.0.0.0:5000)")
	return cmd
}
