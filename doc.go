// Package regnet analyzes Boolean regulatory networks: directed graphs of
// variables whose regulations carry an optional sign (activation or
// inhibition) and an observability flag.
//
// The module is organized under a handful of focused subpackages:
//
//	sdg/               — the signed-directed-graph algorithmic kernel:
//	                      reachability, SCC/WCC, parity-constrained
//	                      shortest cycles, greedy FVS/ICS
//	graph/             — the regulatory-graph facade applications build
//	                      against: variables, regulations, and the
//	                      queries the kernel exposes
//	exactfvs/          — the exact minimum feedback-vertex-set solver, a
//	                      cardinality-stratified cutting-plane loop over
//	                      a pluggable decision oracle
//	paramnet/          — attaches explicit update functions to a
//	                      regulatory graph, producing a parameterized
//	                      Boolean network
//	symbolic/          — the contract for an external symbolic parameter
//	                      space, plus a brute-force reference encoder
//	staticconstraints/ — compiles declared monotonicity and
//	                      observability constraints into a predicate
//	                      over the network's parameter space
package regnet
