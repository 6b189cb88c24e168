package sdg

import "sort"

// RestrictedSCC returns the non-trivial strongly connected components of
// the subgraph induced by r: components of size >= 2, plus any singleton
// {v} where v has a self-loop within r. The result is sorted by
// descending size; ties are broken deterministically by the ascending id
// of the component's smallest member.
func (g *Graph) RestrictedSCC(r VertexSet) [][]int {
	t := &tarjan{
		g:       g,
		r:       r,
		index:   make(map[int]int),
		lowlink: make(map[int]int),
		onStack: make(map[int]bool),
	}
	for _, v := range r.Slice() {
		if _, seen := t.index[v]; !seen {
			t.strongConnect(v)
		}
	}

	nonTrivial := make([][]int, 0, len(t.components))
	for _, comp := range t.components {
		if len(comp) >= 2 || g.hasSelfLoop(comp[0], r) {
			sort.Ints(comp)
			nonTrivial = append(nonTrivial, comp)
		}
	}
	sortComponents(nonTrivial)
	return nonTrivial
}

func (g *Graph) hasSelfLoop(v int, r VertexSet) bool {
	for _, nbr := range g.SuccessorsOf(v, r) {
		if nbr.Vertex == v {
			return true
		}
	}
	return false
}

// tarjan holds the working state of one restricted Tarjan run.
type tarjan struct {
	g          *Graph
	r          VertexSet
	counter    int
	index      map[int]int
	lowlink    map[int]int
	onStack    map[int]bool
	stack      []int
	components [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, nbr := range t.g.SuccessorsOf(v, t.r) {
		w := nbr.Vertex
		if _, seen := t.index[w]; !seen {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []int
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.components = append(t.components, comp)
	}
}

// RestrictedWCC returns the weakly connected components of the subgraph
// induced by r, treating edges as undirected. Isolated vertices with no
// edges are included as singleton components. Sorted by descending size,
// ties broken by ascending id of the smallest member.
func (g *Graph) RestrictedWCC(r VertexSet) [][]int {
	parent := make(map[int]int, len(r))
	for _, v := range r.Slice() {
		parent[v] = v
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, v := range r.Slice() {
		for _, nbr := range g.SuccessorsOf(v, r) {
			union(v, nbr.Vertex)
		}
		for _, nbr := range g.PredecessorsOf(v, r) {
			union(v, nbr.Vertex)
		}
	}

	groups := make(map[int][]int)
	for _, v := range r.Slice() {
		root := find(v)
		groups[root] = append(groups[root], v)
	}
	comps := make([][]int, 0, len(groups))
	for _, comp := range groups {
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sortComponents(comps)
	return comps
}

// sortComponents orders components by descending size, then ascending id
// of the smallest member, so the result is deterministic.
func sortComponents(comps [][]int) {
	sort.Slice(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})
}
