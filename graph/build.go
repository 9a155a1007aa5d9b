// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/ctmc/matrix"
)

// Build converts a generator into its transition graph.
//
// Implementation:
//   - Stage 1: require a non-empty square table.
//   - Stage 2: scan row-major; for i≠j with q[i][j] ≠ 0 append edge i→j.
//
// Behavior highlights:
//   - Sign conventions are not checked here; validation belongs to package validate.
//   - Rebuilding from the same table yields an identical graph.
//
// Errors:
//   - ErrEmptyMatrix, ErrNonSquare (wrapped with the offending row).
//
// Complexity:
//   - Time O(n²), Space O(n + E).
func Build(q [][]float64) (*Graph, error) {
	n := len(q)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		if len(q[i]) != n {
			return nil, fmt.Errorf("graph: row %d has %d entries, want %d: %w", i, len(q[i]), n, ErrNonSquare)
		}
	}

	g := &Graph{
		n:     n,
		out:   make([][]int, n),
		in:    make([][]int, n),
		index: make(map[[2]int]int),
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || q[i][j] == 0 {
				continue
			}
			g.addEdge(i, j, q[i][j])
		}
	}

	return g, nil
}

// FromMatrix builds the transition graph of a square matrix.
func FromMatrix(m matrix.Matrix) (*Graph, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("graph: %w", ErrNonSquare)
	}
	n := m.Rows()
	rows := make([][]float64, n)
	var err error
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("graph: %w", err)
			}
		}
	}

	return Build(rows)
}

func (g *Graph) addEdge(from, to int, rate float64) {
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Rate: rate})
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)
	g.index[[2]int{from, to}] = idx
}
