package sdg

// RestrictedIndependentCycles computes a set of pairwise vertex-disjoint
// cycles within the subgraph induced by r that together approximate a
// hitting set for every cycle in r, using the greedy cycle-centrality
// heuristic. Maximality is not guaranteed.
func (g *Graph) RestrictedIndependentCycles(r VertexSet) [][]int {
	return g.greedyICS(r, func(working VertexSet, v int) []int {
		return g.ShortestCycle(working, v, Unbounded)
	})
}

// RestrictedIndependentParityCycles is RestrictedIndependentCycles
// restricted to cycles of the given parity.
func (g *Graph) RestrictedIndependentParityCycles(r VertexSet, parity Sign) [][]int {
	return g.greedyICS(r, func(working VertexSet, v int) []int {
		return g.ShortestParityCycle(working, v, parity, Unbounded)
	})
}

// greedyICS ranks vertices once by initial cycle-centrality, then walks
// that fixed order: each vertex still present in the shrinking working
// set that still has a cycle contributes one cycle, and every vertex on
// that cycle is removed before continuing.
func (g *Graph) greedyICS(r VertexSet, cycleFinder func(VertexSet, int) []int) [][]int {
	order := g.rankByCentrality(r, func(v int) []int { return cycleFinder(r, v) })

	working := r.Clone()
	var result [][]int
	for _, cand := range order {
		if !working.Contains(cand.vertex) {
			continue
		}
		cyc := cycleFinder(working, cand.vertex)
		if cyc == nil {
			continue
		}
		result = append(result, cyc)
		for _, u := range cyc {
			working.Remove(u)
		}
	}
	return result
}
