package sdg

import "sort"

// cycleScore is one candidate's standing in the cycle-centrality heuristic
// shared by the greedy FVS and independent-cycle algorithms: the shortest
// cycle through the candidate wins by length, ties broken by higher
// combined degree, then by lower id.
type cycleScore struct {
	vertex int
	cycle  []int
	degree int
}

func lessCentral(a, b cycleScore) bool {
	if len(a.cycle) != len(b.cycle) {
		return len(a.cycle) < len(b.cycle)
	}
	if a.degree != b.degree {
		return a.degree > b.degree
	}
	return a.vertex < b.vertex
}

// RestrictedFeedbackVertexSet computes a (not necessarily minimum)
// feedback vertex set for the subgraph induced by r, using the greedy
// cycle-centrality heuristic.
func (g *Graph) RestrictedFeedbackVertexSet(r VertexSet) VertexSet {
	return g.greedyFVS(r, func(working VertexSet, v int) []int {
		return g.ShortestCycle(working, v, Unbounded)
	})
}

// RestrictedParityFeedbackVertexSet is RestrictedFeedbackVertexSet
// restricted to cycles of the given parity.
func (g *Graph) RestrictedParityFeedbackVertexSet(r VertexSet, parity Sign) VertexSet {
	return g.greedyFVS(r, func(working VertexSet, v int) []int {
		return g.ShortestParityCycle(working, v, parity, Unbounded)
	})
}

// greedyFVS runs the shared per-SCC greedy reduction: repeatedly score
// every vertex still in the working set by cycleFinder, remove the most
// central one, and recompute until the component has no more cycles.
func (g *Graph) greedyFVS(r VertexSet, cycleFinder func(VertexSet, int) []int) VertexSet {
	fvs := make(VertexSet)
	for _, comp := range g.RestrictedSCC(r) {
		working := NewVertexSet(comp...)
		for {
			var best *cycleScore
			for _, v := range working.Slice() {
				cyc := cycleFinder(working, v)
				if cyc == nil {
					continue
				}
				score := cycleScore{
					vertex: v,
					cycle:  cyc,
					degree: len(g.SuccessorsOf(v, working)) + len(g.PredecessorsOf(v, working)),
				}
				if best == nil || lessCentral(score, *best) {
					s := score
					best = &s
				}
			}
			if best == nil {
				break
			}
			fvs.Add(best.vertex)
			working.Remove(best.vertex)
		}
	}
	return fvs
}

// rankByCentrality returns v's cycle-centrality score for every vertex in
// r that has a cycle under cycleFinder, sorted most-central first — the
// descending cycle-centrality order the independent-cycle algorithms
// walk.
func (g *Graph) rankByCentrality(r VertexSet, cycleFinder func(int) []int) []cycleScore {
	var scores []cycleScore
	for _, v := range r.Slice() {
		if cyc := cycleFinder(v); cyc != nil {
			degree := len(g.SuccessorsOf(v, r)) + len(g.PredecessorsOf(v, r))
			scores = append(scores, cycleScore{vertex: v, cycle: cyc, degree: degree})
		}
	}
	sort.Slice(scores, func(i, j int) bool { return lessCentral(scores[i], scores[j]) })
	return scores
}
