// Package sdg implements the signed-directed-graph algorithmic kernel used
// to analyze the regulation skeleton of a Boolean regulatory network:
// reachability, strongly/weakly connected components, parity-constrained
// shortest cycles, and the greedy feedback-vertex-set and independent-cycle
// heuristics.
//
// A Graph stores a dual adjacency (successors and predecessors), each edge
// carrying a Sign. It is built once from a regulation list and never
// mutated again; every algorithm takes an explicit VertexSet restriction
// instead, so a single Graph can be reused, restricted differently, across
// many queries without copying.
//
// # Complexity
//
//   - Graph construction: O(V+E).
//   - ForwardReachable / BackwardReachable: O(V+E), each vertex visited once.
//   - RestrictedSCC / RestrictedWCC: O(V+E), Tarjan / union-find.
//   - ShortestCycle: O(V+E) BFS bounded by the caller's bound.
//   - ShortestParityCycle: O(2V+E) BFS over the (vertex, parity) product.
//   - Greedy FVS/ICS: no guaranteed polynomial bound overall (repeated
//     shortest-cycle search inside each SCC), but each search is O(V+E).
//
// # Errors
//
// No function of this package returns an error. An id outside [0, n)
// passed to AddEdge, SuccessorsOf or PredecessorsOf panics with an index
// out of range; a cycle-search pivot outside the restriction yields nil.
// Absence of a result (no cycle, empty FVS, no SCCs) is never an error —
// callers must treat the zero value as a normal outcome.
package sdg
