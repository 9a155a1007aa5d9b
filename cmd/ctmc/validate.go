// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/analysis"
)

// errInvalidModel makes the command exit non-zero after printing the checks.
var errInvalidModel = errors.New("model is invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model-file>",
		Short: "Check a model without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			v, _ := analysis.Validate(m)
			out := cmd.OutOrStdout()
			for _, c := range []struct {
				name  string
				check analysis.Check
			}{
				{"parameters", v.Parameters},
				{"matrix", v.Matrix},
				{"vector", v.Vector},
			} {
				mark := "ok  "
				if !c.check.Valid {
					mark = "FAIL"
				}
				fmt.Fprintf(out, "[%s] %-10s %s\n", mark, c.name, c.check.Message)
			}
			if !v.Valid {
				return errInvalidModel
			}

			return nil
		},
	}
}
