// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctmc/analysis"
	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/render"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <model-file>",
		Short: "Print the transition graph of a model",
		Long:  `Prints the transition graph of Q as Graphviz DOT (default), a Mermaid flowchart, or JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			g, err := graph.Build(m.Matrix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format, _ := cmd.Flags().GetString("format"); format {
			case "dot":
				_, err = fmt.Fprintln(out, render.DOT(g))
			case "mermaid":
				_, err = fmt.Fprint(out, render.Mermaid(g))
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err = enc.Encode(analysis.Summarize(g))
			default:
				err = fmt.Errorf("unknown format %q (want dot, mermaid or json)", format)
			}

			return err
		},
	}
	cmd.Flags().StringP("format", "f", "dot", "Output format: dot, mermaid or json")

	return cmd
}
