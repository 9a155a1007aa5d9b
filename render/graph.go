// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ctmc/graph"
)

// DOT returns the Graphviz description of g: left-to-right layout, circular
// nodes labelled S with the state index as subscript, and one edge per
// transition labelled with its rate.
//
//	digraph G {
//	rankdir=LR;
//	node [shape=circle];
//	S0 [label=<S<sub>0</sub>>];
//	S0 -> S1 [label=<1>];
//	}
func DOT(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("rankdir=LR;\n")
	sb.WriteString("node [shape=circle];\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(&sb, "%s [label=<S<sub>%d</sub>>];\n", graph.Label(v), v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "%s -> %s [label=<%s>];\n", graph.Label(e.From), graph.Label(e.To), Number(e.Rate))
	}
	sb.WriteString("}")

	return sb.String()
}

// Mermaid returns a left-to-right Mermaid flowchart of g. Absorbing states are
// drawn as double circles.
func Mermaid(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, v := range g.Vertices() {
		opener, closer := "((", "))"
		if abs, _ := g.IsAbsorbing(v); abs {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", graph.Label(v), opener, graph.Label(v), closer)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", graph.Label(e.From), Number(e.Rate), graph.Label(e.To))
	}

	return sb.String()
}
