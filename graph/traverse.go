// SPDX-License-Identifier: MIT

package graph

// ReachResult is the outcome of a breadth-first walk from a start state.
type ReachResult struct {
	// Order lists states in visit order.
	Order []int

	// Depth[i] is the number of transitions from the start, or -1 if unreachable.
	Depth []int

	// Parent[i] is the BFS predecessor of i, or -1 for the start and unreachable states.
	Parent []int
}

// walker carries the BFS state; one walker per call.
type walker struct {
	g       *Graph
	reverse bool
	queue   []int
	res     *ReachResult
}

// Reachable walks the graph breadth-first from start along transition direction.
//
// Determinism:
//   - Neighbors are expanded in ascending order, so Order is stable.
//
// Errors:
//   - ErrVertexNotFound when start is out of range.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (g *Graph) Reachable(start int) (*ReachResult, error) {
	if !g.has(start) {
		return nil, vertexErrorf("Reachable", start)
	}

	return g.walk(start, false), nil
}

func (g *Graph) walk(start int, reverse bool) *ReachResult {
	w := &walker{
		g:       g,
		reverse: reverse,
		queue:   make([]int, 0, g.n),
		res: &ReachResult{
			Order:  make([]int, 0, g.n),
			Depth:  make([]int, g.n),
			Parent: make([]int, g.n),
		},
	}
	for i := 0; i < g.n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	w.enqueue(start, 0, -1)
	w.loop()

	return w.res
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		adj := w.g.out[id]
		if w.reverse {
			adj = w.g.in[id]
		}
		for _, idx := range adj {
			nbr := w.g.edges[idx].To
			if w.reverse {
				nbr = w.g.edges[idx].From
			}
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, w.res.Depth[id]+1, id)
			}
		}
	}
}

// IsIrreducible reports whether every state reaches every other state
// (the graph is strongly connected). A single state is irreducible.
// Complexity: O(V + E).
func (g *Graph) IsIrreducible() bool {
	if g.n == 0 {
		return false
	}

	return len(g.walk(0, false).Order) == g.n && len(g.walk(0, true).Order) == g.n
}

// Classes returns the communicating classes (strongly connected components),
// each sorted ascending, ordered by their smallest state.
//
// Implementation:
//   - Kosaraju: iterative DFS finishing order on the graph, then BFS on the
//     reversed graph in decreasing finish time.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (g *Graph) Classes() [][]int {
	visited := make([]bool, g.n)
	finish := make([]int, 0, g.n)

	type frame struct{ id, next int }
	for s := 0; s < g.n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		stack := []frame{{id: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g.out[top.id]) {
				nbr := g.edges[g.out[top.id][top.next]].To
				top.next++
				if !visited[nbr] {
					visited[nbr] = true
					stack = append(stack, frame{id: nbr})
				}
				continue
			}
			finish = append(finish, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	comp := make([]int, g.n)
	for i := range comp {
		comp[i] = -1
	}
	var classes [][]int
	for k := len(finish) - 1; k >= 0; k-- {
		root := finish[k]
		if comp[root] >= 0 {
			continue
		}
		id := len(classes)
		comp[root] = id
		members := []int{root}
		for q := 0; q < len(members); q++ {
			for _, idx := range g.in[members[q]] {
				from := g.edges[idx].From
				if comp[from] < 0 {
					comp[from] = id
					members = append(members, from)
				}
			}
		}
		classes = append(classes, members)
	}

	// canonical order: members ascending, classes by smallest member
	out := make([][]int, 0, len(classes))
	seen := make([]bool, len(classes))
	for i := 0; i < g.n; i++ {
		c := comp[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		members := make([]int, 0, len(classes[c]))
		for j := i; j < g.n; j++ {
			if comp[j] == c {
				members = append(members, j)
			}
		}
		out = append(out, members)
	}

	return out
}

// IsClosed reports whether no transition leaves the given set of states.
// Closed communicating classes carry all stationary mass.
func (g *Graph) IsClosed(states []int) bool {
	in := make(map[int]bool, len(states))
	for _, s := range states {
		in[s] = true
	}
	for _, s := range states {
		if !g.has(s) {
			return false
		}
		for _, idx := range g.out[s] {
			if !in[g.edges[idx].To] {
				return false
			}
		}
	}

	return true
}
