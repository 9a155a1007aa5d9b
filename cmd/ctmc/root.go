// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/internal/config"
	"github.com/katalvlaran/ctmc/internal/logger"
	"github.com/katalvlaran/ctmc/internal/logger/console"
	"github.com/katalvlaran/ctmc/model"
)

// app carries the effective configuration shared by every subcommand.
type app struct {
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "ctmc",
		Short:         "Continuous-time Markov chain analysis",
		Long:          `ctmc validates a CTMC model (generator Q and initial distribution p(0)), computes its transient and stationary distributions and describes its transition graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().Bool("debug", false, "Enable debug logging (env "+config.EnvDebug+")")
	root.PersistentFlags().Int("workers", 0, "Transient solver workers (env "+config.EnvWorkers+")")
	root.PersistentFlags().Int("precision", -1, "Display precision, overrides the model (env "+config.EnvPrecision+")")

	root.AddCommand(
		newAnalyzeCmd(a),
		newValidateCmd(a),
		newGraphCmd(a),
		newStationaryCmd(a),
		newNormalizeCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the environment, applies flag overrides and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	config.LoadEnv()
	a.cfg = config.FromEnv()

	flags := cmd.Flags()
	if flags.Changed("debug") {
		a.cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("precision") {
		p, _ := flags.GetInt("precision")
		if p < -1 || p > model.MaxPrecision {
			return fmt.Errorf("invalid --precision %d: must be from -1 to %d", p, model.MaxPrecision)
		}
		a.cfg.Precision = p
	}
	if flags.Changed("workers") {
		n, _ := flags.GetInt("workers")
		if n < 1 {
			return fmt.Errorf("invalid --workers %d: must be at least 1", n)
		}
		a.cfg.Workers = n
	}

	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  a.cfg.Debug,
		Writer: cmd.ErrOrStderr(),
	}))
	logger.Debug("configuration loaded", "workers", a.cfg.Workers, "addr", a.cfg.HTTPAddr)

	return nil
}

// load reads a model file and applies the precision override.
func (a *app) load(path string) (*model.Model, error) {
	m, err := model.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if a.cfg.Precision >= 0 {
		m.Precision = a.cfg.Precision
	}

	return m, nil
}
