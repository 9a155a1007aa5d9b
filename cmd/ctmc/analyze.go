// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/analysis"
	"github.com/katalvlaran/ctmc/render"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <model-file>",
		Short: "Run the full analysis of a model",
		Long:  `Validates the model, builds its transition graph and computes the stationary and transient distributions. Files ending in .yaml or .yml are read as YAML, anything else as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != "json" && format != "text" && format != "chart" {
				return fmt.Errorf("unknown format %q (want text, json or chart)", format)
			}
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			report, err := analysis.New(analysis.WithWorkers(a.cfg.Workers)).Run(cmd.Context(), m)
			if err != nil {
				return err
			}
			if format == "text" {
				return analysis.WriteText(cmd.OutOrStdout(), report)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if format == "chart" {
				return enc.Encode(render.NewSession().Chart(report.Transient, m.Precision))
			}

			return enc.Encode(report)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or chart")

	return cmd
}
