// SPDX-License-Identifier: MIT

package graph

// Order returns the number of states.
func (g *Graph) Order() int { return g.n }

// Size returns the number of transitions.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the state indexes 0..n−1 in ascending order.
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns a copy of all transitions in row-major order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the targets of transitions leaving i, ascending.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if !g.has(i) {
		return nil, vertexErrorf("Neighbors", i)
	}
	out := make([]int, len(g.out[i]))
	for k, idx := range g.out[i] {
		out[k] = g.edges[idx].To
	}

	return out, nil
}

// Predecessors returns the sources of transitions entering j, ascending.
func (g *Graph) Predecessors(j int) ([]int, error) {
	if !g.has(j) {
		return nil, vertexErrorf("Predecessors", j)
	}
	out := make([]int, len(g.in[j]))
	for k, idx := range g.in[j] {
		out[k] = g.edges[idx].From
	}

	return out, nil
}

// HasEdge reports whether the transition i→j exists.
func (g *Graph) HasEdge(i, j int) bool {
	_, ok := g.index[[2]int{i, j}]

	return ok
}

// Rate returns Q[i][j] for an existing transition; ok is false otherwise.
func (g *Graph) Rate(i, j int) (rate float64, ok bool) {
	idx, ok := g.index[[2]int{i, j}]
	if !ok {
		return 0, false
	}

	return g.edges[idx].Rate, true
}

// OutRate returns the total exit intensity Σ_{j≠i} Q[i][j] of state i.
// For a valid generator this equals −Q[i][i].
func (g *Graph) OutRate(i int) (float64, error) {
	if !g.has(i) {
		return 0, vertexErrorf("OutRate", i)
	}
	var sum float64
	for _, idx := range g.out[i] {
		sum += g.edges[idx].Rate
	}

	return sum, nil
}

// IsAbsorbing reports whether state i has no outgoing transitions.
func (g *Graph) IsAbsorbing(i int) (bool, error) {
	if !g.has(i) {
		return false, vertexErrorf("IsAbsorbing", i)
	}

	return len(g.out[i]) == 0, nil
}

// Absorbing returns every absorbing state, ascending.
func (g *Graph) Absorbing() []int {
	var out []int
	for i := 0; i < g.n; i++ {
		if len(g.out[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}

func (g *Graph) has(i int) bool { return i >= 0 && i < g.n }
