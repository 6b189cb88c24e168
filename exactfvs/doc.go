// Package exactfvs implements the exact minimum feedback-vertex-set
// solver: a cardinality-stratified cutting-plane loop where an outer
// DecisionOracle proposes candidate sets of a fixed size and an inner
// cycle-separation step (sdg.Graph.ShortestCycle) adds violated cycle
// constraints until either a feasible candidate is found or the stratum
// is exhausted.
//
// The outer decision procedure is abstracted behind DecisionOracle so a
// production caller can plug in a BDD-backed or pseudo-Boolean SAT
// backend; this package ships BruteForceOracle as a reference
// implementation sufficient for the small candidate pools biological
// regulatory networks produce after preprocessing.
package exactfvs
