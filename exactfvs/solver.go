package exactfvs

import (
	"context"
	"sort"

	"github.com/boolnet/regnet/sdg"
)

// VariableId mirrors graph.VariableId without importing package graph
// (which itself imports exactfvs); keeping this package's public surface
// in terms of plain ints avoids an import cycle.
type VariableId = int

// Options configures Solve. A nil Options, or a nil Oracle field,
// defaults to a fresh BruteForceOracle and an uncancellable context.
type Options struct {
	// Oracle is the decision procedure driving the outer cutting-plane
	// loop. Defaults to BruteForceOracle.
	Oracle DecisionOracle

	// Context is checked between outer-loop strata and inner-loop
	// iterations; a cancelled context aborts Solve early with ctx.Err().
	Context context.Context
}

func (o *Options) oracle() DecisionOracle {
	if o == nil || o.Oracle == nil {
		return NewBruteForceOracle()
	}
	return o.Oracle
}

func (o *Options) context() context.Context {
	if o == nil || o.Context == nil {
		return context.Background()
	}
	return o.Context
}

// Solve computes a minimum-cardinality feedback vertex set of sg via a
// cardinality-stratified cutting-plane loop: for each candidate cardinality
// k from the independent-cycle lower bound up to the greedy upper bound, it
// asks the oracle for a size-k vertex set, checks whether removing it
// leaves the graph acyclic, and if not asserts a disjunction over the
// conflicting cycle's vertices before retrying. regulators and targets give,
// for each vertex, its regulator and target id lists in the full
// (unrestricted) graph — used only by the preprocessing step.
func Solve(sg *sdg.Graph, regulators, targets [][]VariableId, opts *Options) (sdg.VertexSet, error) {
	oracle := opts.oracle()
	ctx := opts.context()

	cyclicVertices, candidates := preprocess(sg, regulators, targets)
	if len(cyclicVertices) == 0 {
		return sdg.NewVertexSet(), nil
	}

	lowerBound := len(sg.RestrictedIndependentCycles(cyclicVertices))
	greedy := sg.RestrictedFeedbackVertexSet(cyclicVertices)
	upperBound := len(greedy)

	if lowerBound >= upperBound {
		return greedy, nil
	}

	order := candidates.Slice()
	indexOf := make(map[VariableId]int, len(order))
	for i, v := range order {
		indexOf[v] = i
	}
	allIndices := make([]int, len(order))
	for i := range order {
		allIndices[i] = i
	}

	for k := lowerBound; k < upperBound; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		oracle.Reset(len(order))
		if err := oracle.AssertExactlyK(allIndices, k); err != nil {
			return nil, err
		}

		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			sat, model, ok := oracle.Solve()
			if !ok {
				return nil, ErrOracleUnknown
			}
			if !sat {
				break
			}

			selected := sdg.NewVertexSet()
			for i, v := range order {
				if model[i] {
					selected.Add(v)
				}
			}
			remaining := cyclicVertices.Clone()
			for v := range selected {
				remaining.Remove(v)
			}

			conflict := findConflictCycle(sg, remaining)
			if conflict == nil {
				return selected, nil
			}

			indices := make([]int, 0, len(conflict))
			for _, v := range conflict {
				if i, ok := indexOf[v]; ok {
					indices = append(indices, i)
				}
			}
			if err := oracle.AssertDisjunction(indices); err != nil {
				return nil, err
			}
		}
	}

	return greedy, nil
}

// findConflictCycle runs the inner separation step: find the shortest
// cycle through every remaining vertex (descending id order), and among
// any found, return the one with the largest maximum vertex id — a
// deterministic tiebreak for "pick one".
func findConflictCycle(sg *sdg.Graph, remaining sdg.VertexSet) []VariableId {
	ids := remaining.Slice()
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	var best []VariableId
	bestMax := -1
	for _, v := range ids {
		cycle := sg.ShortestCycle(remaining, v, sdg.Unbounded)
		if cycle == nil {
			continue
		}
		m := maxOf(cycle)
		if m > bestMax {
			bestMax = m
			best = cycle
		}
	}
	return best
}

func maxOf(vs []VariableId) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// preprocess drops acyclic variables, producing cyclicVertices (the
// universe every cycle-finding call in Solve restricts to), then makes a
// single ascending-id pass over cyclicVertices to drop forced pass-through
// variables, producing candidates (the pool the outer loop may select F
// from). A variable is skipped when it has exactly one regulator (in the
// full, unrestricted graph) and that regulator was already admitted to
// candidates earlier in the pass, or symmetrically for a single target —
// it is then dominated by that already-admitted neighbor and never needs
// to be selected itself. Unlike a fixpoint over a shrinking pool, this
// check is against each vertex's full regulator/target count and against
// candidates as built so far, never re-evaluated once a vertex is
// admitted or skipped — admitting a vertex can only ever let more
// downstream vertices be skipped, never fewer, so one pass is enough and
// a live-filtered fixpoint would risk cascading an early skip into
// wrongly skipping a vertex that has other regulators or targets still
// outside the pool.
//
// Pass-through vertices are dominated by a neighbor that stays in
// cyclicVertices, so they never need to be selected — but they must stay
// in cyclicVertices itself, or cycles running only through them would go
// undetected.
func preprocess(sg *sdg.Graph, regulators, targets [][]VariableId) (cyclicVertices, candidates sdg.VertexSet) {
	cyclicVertices = sdg.NewVertexSet()
	for _, v := range sg.AllVertices().Slice() {
		if sg.ShortestCycle(sg.AllVertices(), v, sdg.Unbounded) != nil {
			cyclicVertices.Add(v)
		}
	}

	candidates = sdg.NewVertexSet()
	for _, v := range cyclicVertices.Slice() {
		if len(regulators[v]) == 1 && candidates.Contains(regulators[v][0]) {
			continue
		}
		if len(targets[v]) == 1 && candidates.Contains(targets[v][0]) {
			continue
		}
		candidates.Add(v)
	}

	return cyclicVertices, candidates
}
