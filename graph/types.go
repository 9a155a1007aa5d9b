// SPDX-License-Identifier: MIT

// Package graph: types and sentinel errors.
//
// A Graph is the read-only transition structure of a generator Q: vertex i is
// state i, and every non-zero off-diagonal Q[i][j] becomes the edge i→j carrying
// the rate Q[i][j]. Self-loops cannot occur (the diagonal is never read as an edge);
// cycles between distinct states are ordinary CTMC topology.
//
// Errors:
//
//	ErrEmptyMatrix    - the generator has no rows.
//	ErrNonSquare      - a row length differs from the row count.
//	ErrVertexNotFound - a state index is outside [0, Order()).
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyMatrix indicates that Build received no rows.
	ErrEmptyMatrix = errors.New("graph: generator is empty")

	// ErrNonSquare indicates that Build received a ragged or rectangular table.
	ErrNonSquare = errors.New("graph: generator is not square")

	// ErrVertexNotFound indicates a query referenced a non-existent state.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Edge is a directed transition From→To with its intensity.
type Edge struct {
	// From is the source state index.
	From int `json:"from"`

	// To is the destination state index.
	To int `json:"to"`

	// Rate is Q[From][To]; non-zero by construction.
	Rate float64 `json:"rate"`
}

// Graph is an immutable transition graph. It is safe for concurrent readers.
type Graph struct {
	n     int
	edges []Edge      // row-major order (From ascending, then To ascending)
	out   [][]int     // out[i] = indexes into edges leaving i
	in    [][]int     // in[j]  = indexes into edges entering j
	index map[[2]int]int
}

// Label returns the display name of state i ("S0", "S1", ...).
func Label(i int) string { return fmt.Sprintf("S%d", i) }

func vertexErrorf(op string, i int) error {
	return fmt.Errorf("graph: %s(%d): %w", op, i, ErrVertexNotFound)
}
