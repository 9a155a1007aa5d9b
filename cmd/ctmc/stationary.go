// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/render"
	"github.com/katalvlaran/ctmc/stationary"
	"github.com/katalvlaran/ctmc/validate"
)

func newStationaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stationary <model-file>",
		Short: "Solve the Kolmogorov balance equations of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			if res := validate.ValidateTableValues(m.Matrix); !res.Valid {
				return res.Err
			}
			d, err := stationary.Solve(m.Matrix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if latex, _ := cmd.Flags().GetBool("latex"); latex {
				fmt.Fprintln(out, render.Display(render.MatrixLaTeX(m.Matrix, m.Precision)))
				fmt.Fprintln(out, render.Display(render.KolmogorovLaTeX(m.Matrix, m.Precision)))
				fmt.Fprintln(out, render.Display(render.SolutionLaTeX(d, m.Precision)))

				return nil
			}
			for i, r := range d.Rationals() {
				fmt.Fprintf(out, "p%d = %s ≈ %s\n", i, render.Fixed(d.Pi[i], m.Precision), r)
			}

			return nil
		},
	}
	cmd.Flags().Bool("latex", false, "Print Q, the balance system and the solution as LaTeX")

	return cmd
}
