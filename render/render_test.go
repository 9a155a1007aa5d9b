// SPDX-License-Identifier: MIT
package render_test

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/render"
	"github.com/katalvlaran/ctmc/stationary"
	"github.com/katalvlaran/ctmc/transient"
)

func mustGraph(t *testing.T, q [][]float64) *graph.Graph {
	t.Helper()
	g, err := graph.Build(q)
	require.NoError(t, err)

	return g
}

func TestFixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x    float64
		prec int
		want string
	}{
		{0.5, 4, "0.5000"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{0.125, 2, "0.13"},
		{1.005, 2, "1.00"}, // 1.00499999… is not a tie
		{1.0 / 3, 4, "0.3333"},
		{-1, 3, "-1.000"},
		{12345.6789, 1, "12345.7"},
		{0, 2, "0.00"},
		{0.5, -1, "1"},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, render.Fixed(tc.x, tc.prec), "Fixed(%v, %d)", tc.x, tc.prec)
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x    float64
		want string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{-3, "-3"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{1e21, "1e+21"},
		{123456, "123456"},
		{0, "0"},
		{math.Inf(1), "Infinity"},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, render.Number(tc.x), "Number(%v)", tc.x)
	}
}

func TestDOT(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]float64{{-1.5, 1.5, 0}, {0, -2, 2}, {0.25, 0, -0.25}})
	want := "digraph G {\n" +
		"rankdir=LR;\n" +
		"node [shape=circle];\n" +
		"S0 [label=<S<sub>0</sub>>];\n" +
		"S1 [label=<S<sub>1</sub>>];\n" +
		"S2 [label=<S<sub>2</sub>>];\n" +
		"S0 -> S1 [label=<1.5>];\n" +
		"S1 -> S2 [label=<2>];\n" +
		"S2 -> S0 [label=<0.25>];\n" +
		"}"
	require.Equal(t, want, render.DOT(g))
}

func TestMermaid(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, [][]float64{{-1, 1}, {0, 0}})
	want := "graph LR\n" +
		"    S0((\"S0\"))\n" +
		"    S1(((\"S1\")))\n" +
		"    S0 -- \"1\" --> S1\n"
	require.Equal(t, want, render.Mermaid(g))
}

func TestMatrixLaTeX(t *testing.T) {
	t.Parallel()

	got := render.MatrixLaTeX([][]float64{{-1, 1}, {0.5, -0.5}}, 2)
	require.Equal(t, `\begin{bmatrix} -1.00 & 1.00 \\ 0.50 & -0.50 \end{bmatrix}`, got)
	require.Empty(t, render.MatrixLaTeX(nil, 2))
	require.Equal(t, `\[ x \]`, render.Display("x"))
}

func TestKolmogorovLaTeX(t *testing.T) {
	t.Parallel()

	q := [][]float64{
		{-1, 1, 0},
		{2.5, -2.5, 0},
		{0, 0, 0},
	}
	want := `\begin{cases} ` +
		`-p_{0}+2.50p_{1} = 0 \\` +
		`p_{0}-2.50p_{1} = 0 \\` +
		`0 = 0 \\` +
		`p_{0} + p_{1} + p_{2} = 1` +
		` \end{cases}`
	require.Equal(t, want, render.KolmogorovLaTeX(q, 2))
	require.Empty(t, render.KolmogorovLaTeX(nil, 2))
}

func TestSolution(t *testing.T) {
	t.Parallel()

	d, err := stationary.Solve([][]float64{{-1, 1}, {2, -2}})
	require.NoError(t, err)
	lines := render.SolutionLines(d, 4)
	require.Equal(t, []string{
		`p_{0} = 0.6667 = \frac{2}{3}`,
		`p_{1} = 0.3333 = \frac{1}{3}`,
	}, lines)
	require.Equal(t,
		`\begin{cases} p_{0} = 0.6667 = \frac{2}{3} \\p_{1} = 0.3333 = \frac{1}{3} \\ \end{cases}`,
		render.SolutionLaTeX(d, 4))
}

func TestSession_Colours(t *testing.T) {
	t.Parallel()

	s := render.NewSession()
	require.NotEmpty(t, s.ID())
	require.NotEqual(t, s.ID(), render.NewSession().ID())

	require.Equal(t, "hsl(0, 70%, 50%)", s.Colour())
	require.Equal(t, "hsl(30, 70%, 50%)", s.Colour())
	for i := 0; i < 10; i++ {
		s.Colour()
	}
	require.Equal(t, "hsl(0, 70%, 50%)", s.Colour())
	s.ResetColours()
	require.Equal(t, "hsl(0, 70%, 50%)", s.Colour())

	// sessions do not share the palette
	other := render.NewSession()
	require.Equal(t, "hsl(0, 70%, 50%)", other.Colour())
}

func TestSession_Caches(t *testing.T) {
	t.Parallel()

	s := render.NewSession()
	_, ok := s.LastDOT()
	require.False(t, ok)
	_, ok = s.LastTrajectory()
	require.False(t, ok)

	q := [][]float64{{-1, 1}, {1, -1}}
	dot := s.DOT(mustGraph(t, q))
	last, ok := s.LastDOT()
	require.True(t, ok)
	require.Equal(t, dot, last)

	tr, err := transient.Solve(context.Background(), []float64{1, 0}, q, 1, 3)
	require.NoError(t, err)
	s.Colour() // palette restarts on Chart
	chart := s.Chart(tr, 2)
	require.Equal(t, []float64{0, 0.33, 0.67, 1}, chart.Labels)
	require.Len(t, chart.Datasets, 2)
	require.Equal(t, "p0(t)", chart.Datasets[0].Label)
	require.Equal(t, "hsl(0, 70%, 50%)", chart.Datasets[0].Colour)
	require.Equal(t, "hsl(30, 70%, 50%)", chart.Datasets[1].Colour)
	require.InDelta(t, 1.0, chart.Datasets[0].Data[0], 1e-12)

	got, ok := s.LastTrajectory()
	require.True(t, ok)
	require.Equal(t, tr, got)
}

func TestSession_Concurrent(t *testing.T) {
	t.Parallel()

	s := render.NewSession()
	var wg sync.WaitGroup
	seen := make(chan string, 120)
	for i := 0; i < 120; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- s.Colour()
		}()
	}
	wg.Wait()
	close(seen)

	counts := map[string]int{}
	for c := range seen {
		require.True(t, strings.HasPrefix(c, "hsl("))
		counts[c]++
	}
	require.Len(t, counts, 12)
	for _, n := range counts {
		require.Equal(t, 10, n)
	}
}
