// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/analysis"
	"github.com/katalvlaran/ctmc/internal/metrics"
	"github.com/katalvlaran/ctmc/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves /v1/analyze, /v1/validate, /v1/graph and /v1/latex, plus /metrics and /healthz.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := a.cfg.HTTPAddr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := metrics.New()
			an := analysis.New(analysis.WithWorkers(a.cfg.Workers), analysis.WithMetrics(reg))
			srv := server.New(an, reg, server.WithMaxStates(a.cfg.MaxStates))

			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (env CTMC_HTTP_ADDR, default :8080)")

	return cmd
}

