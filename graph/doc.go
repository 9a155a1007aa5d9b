// Package graph extracts the directed transition graph of a CTMC generator.
//
// Build creates one vertex per state and one edge i→j, labelled with the rate
// Q[i][j], for every non-zero off-diagonal entry, in row-major order. The result
// is immutable and exposes structural queries that explain solver behavior:
//
//   - Neighbors / Predecessors / HasEdge / Rate / OutRate for local structure;
//   - Absorbing / IsAbsorbing for states with no exit;
//   - Reachable (BFS), IsIrreducible and Classes (communicating classes) for
//     global structure.
//
// Text formats (DOT, Mermaid) are produced by package render.
package graph
