package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mchmarny/sidebar/pkg/logger"
	"github.com/mchmarny/sidebar/pkg/menu"
	"github.com/mchmarny/sidebar/pkg/metric"
	"github.com/mchmarny/sidebar/pkg/server"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sidebar menu over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			log := logger.SetDefaultLoggerWithLevel(module, version, cfg.LogLevel, cfg.LogFormat)
			log.Info("starting sidebar", "commit", commit, "date", date)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.close(); err != nil {
					log.Error("failed to close content store", "error", err)
				}
			}()

			requests := metric.NewCounterWithRegistry(a.registry,
				"sidebar_menu_requests_total", "Menu requests by response status.", "status")

			srv := server.New(
				server.WithPort(cfg.Port),
				server.WithLogger(log),
				server.WithRegistry(a.registry),
				server.WithPrometheusMetrics(),
				server.WithSimpleHealth(),
				server.WithReadinessCheck(a.store),
				server.WithGetHandler(cfg.APIPath(), menu.Handler(a.builder,
					menu.WithRequestCounter(requests),
					menu.WithHandlerLogger(log))),
			)

			log.Info("serving menu", "path", cfg.APIPath())

			return srv.Serve(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", server.DefaultPort, "Port to run the server on (overrides SIDEBAR_PORT)")

	return cmd
}
