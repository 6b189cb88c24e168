package sdg

import "math"

// Unbounded disables the length cutoff in ShortestCycle/ShortestParityCycle.
const Unbounded = math.MaxInt

// ShortestCycle finds the shortest simple cycle through pivot contained in
// r, of length <= bound, or nil if none exists. It BFS-explores successor
// edges from pivot; the first time the frontier reaches a predecessor of
// pivot, the cycle is reconstructed from the BFS parent pointers. Ties
// among equally-short cycles are broken by BFS discovery order.
func (g *Graph) ShortestCycle(r VertexSet, pivot int, bound int) []int {
	if !r.Contains(pivot) {
		return nil
	}

	visited := map[int]bool{pivot: true}
	parent := make(map[int]int)
	depth := map[int]int{pivot: 0}
	queue := []int{pivot}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		d := depth[v]
		if d+1 > bound {
			continue
		}

		for _, nbr := range g.SuccessorsOf(v, r) {
			w := nbr.Vertex
			if w == pivot {
				return reconstructCycle(parent, v, pivot)
			}
			if !visited[w] {
				visited[w] = true
				parent[w] = v
				depth[w] = d + 1
				queue = append(queue, w)
			}
		}
	}
	return nil
}

// parityState is a (vertex, running parity) pair: the state space of the
// product graph ShortestParityCycle searches.
type parityState struct {
	vertex int
	parity Sign
}

// ShortestParityCycle finds the shortest simple cycle through pivot whose
// edge-sign-sum equals targetParity, contained in r, of length <= bound,
// or nil if none exists.
//
// Simpleness follows interpretation (a): a vertex may be revisited only
// under a different running parity, enforced here via per-(vertex,parity)
// predecessor tracking, never by allowing the same (vertex,parity) pair
// twice.
func (g *Graph) ShortestParityCycle(r VertexSet, pivot int, targetParity Sign, bound int) []int {
	if !r.Contains(pivot) {
		return nil
	}

	start := parityState{vertex: pivot, parity: Positive}
	visited := map[parityState]bool{start: true}
	parent := make(map[parityState]parityState)
	vertexOf := make(map[parityState]int)
	depth := map[parityState]int{start: 0}
	queue := []parityState{start}
	vertexOf[start] = pivot

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		d := depth[s]
		if d+1 > bound {
			continue
		}

		for _, nbr := range g.SuccessorsOf(s.vertex, r) {
			newParity := s.parity.Add(nbr.Sign)
			if nbr.Vertex == pivot {
				if newParity == targetParity {
					return reconstructParityCycle(parent, vertexOf, s, pivot)
				}
				continue
			}
			next := parityState{vertex: nbr.Vertex, parity: newParity}
			if !visited[next] {
				visited[next] = true
				parent[next] = s
				vertexOf[next] = nbr.Vertex
				depth[next] = d + 1
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// reconstructCycle walks the BFS parent chain from last back to pivot and
// returns the cycle in forward order [pivot, ..., last].
func reconstructCycle(parent map[int]int, last, pivot int) []int {
	var rev []int
	cur := last
	for cur != pivot {
		rev = append(rev, cur)
		cur = parent[cur]
	}
	cycle := make([]int, 0, len(rev)+1)
	cycle = append(cycle, pivot)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}
	return cycle
}

func reconstructParityCycle(parent map[parityState]parityState, vertexOf map[parityState]int, last parityState, pivot int) []int {
	var rev []int
	cur := last
	for cur.vertex != pivot || cur.parity != Positive {
		rev = append(rev, vertexOf[cur])
		cur = parent[cur]
	}
	cycle := make([]int, 0, len(rev)+1)
	cycle = append(cycle, pivot)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}
	return cycle
}
