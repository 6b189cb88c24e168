package sdg

// Neighbor is a (vertex, sign) pair stored in an adjacency list.
type Neighbor struct {
	Vertex int
	Sign   Sign
}

// Graph is a compact, immutable signed directed graph over dense vertex
// ids [0, n). It stores both the successor and the predecessor adjacency,
// kept in lockstep by the mirror invariant: for every (u, (v, s)) in
// successors there is (v, (u, s)) in predecessors.
//
// Parallel edges with differing signs are permitted and treated as
// distinct entries. Self-loops are never suppressed.
type Graph struct {
	n          int
	successors [][]Neighbor
	predecessors [][]Neighbor
}

// New allocates an empty n-vertex graph. Edges are added with AddEdge.
func New(n int) *Graph {
	return &Graph{
		n:            n,
		successors:   make([][]Neighbor, n),
		predecessors: make([][]Neighbor, n),
	}
}

// NumVertices returns n, the number of vertices the graph was built with.
func (g *Graph) NumVertices() int {
	return g.n
}

// AddEdge records a signed edge u -> v. Construction-time only: Graph has
// no public mutation surface once queries begin.
func (g *Graph) AddEdge(u, v int, sign Sign) {
	g.successors[u] = append(g.successors[u], Neighbor{Vertex: v, Sign: sign})
	g.predecessors[v] = append(g.predecessors[v], Neighbor{Vertex: u, Sign: sign})
}

// AllVertices returns the restriction set {0, ..., n-1}.
func (g *Graph) AllVertices() VertexSet {
	set := make(VertexSet, g.n)
	for v := 0; v < g.n; v++ {
		set[v] = struct{}{}
	}
	return set
}

// SuccessorsOf iterates the out-neighbors of v whose target lies in R.
func (g *Graph) SuccessorsOf(v int, r VertexSet) []Neighbor {
	return filterNeighbors(g.successors[v], r)
}

// PredecessorsOf iterates the in-neighbors of v whose source lies in R.
func (g *Graph) PredecessorsOf(v int, r VertexSet) []Neighbor {
	return filterNeighbors(g.predecessors[v], r)
}

func filterNeighbors(all []Neighbor, r VertexSet) []Neighbor {
	out := make([]Neighbor, 0, len(all))
	for _, nbr := range all {
		if r.Contains(nbr.Vertex) {
			out = append(out, nbr)
		}
	}
	return out
}
