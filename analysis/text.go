// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/render"
)

// WriteText prints a human-readable summary of r using its display precision.
func WriteText(w io.Writer, r *Report) error {
	prec := r.Parameters.Precision
	var sb strings.Builder

	fmt.Fprintf(&sb, "request:      %s\n", r.RequestID)
	fmt.Fprintf(&sb, "states:       %d\n", r.States)
	fmt.Fprintf(&sb, "transitions:  %d\n", len(r.Graph.Edges))
	fmt.Fprintf(&sb, "irreducible:  %t\n", r.Graph.Irreducible)
	if len(r.Graph.Absorbing) > 0 {
		labels := make([]string, len(r.Graph.Absorbing))
		for i, v := range r.Graph.Absorbing {
			labels[i] = graph.Label(v)
		}
		fmt.Fprintf(&sb, "absorbing:    %s\n", strings.Join(labels, ", "))
	}

	sb.WriteString("\nstationary distribution:\n")
	for i, v := range r.Stationary.Pi {
		rat := r.Stationary.Rationals[i]
		fmt.Fprintf(&sb, "  p%d = %s ≈ %s\n", i, render.Fixed(v, prec), rat)
	}
	fmt.Fprintf(&sb, "  residual max|πQ| = %s\n", render.Number(r.Stationary.Residual))

	if final := r.Transient.Final(); final != nil {
		times := r.Transient.Times()
		fmt.Fprintf(&sb, "\ntransient p(t) at t = %s (%d samples):\n",
			render.Fixed(times[len(times)-1], prec), r.Transient.Len())
		for i, v := range final {
			fmt.Fprintf(&sb, "  p%d = %s\n", i, render.Fixed(v, prec))
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
