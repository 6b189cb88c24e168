package graph

import (
	"github.com/boolnet/regnet/exactfvs"
	"github.com/boolnet/regnet/sdg"
)

// toSdGraph derives a fresh signed directed graph from the current
// regulation list. The SdG is discarded after each call — nothing here is
// cached on the RegulatoryGraph.
func (g *RegulatoryGraph) toSdGraph() *sdg.Graph {
	out := sdg.New(g.numVars)
	for _, r := range g.regulations {
		sign := sdg.Positive
		if r.Sign != nil {
			sign = *r.Sign
		}
		out.AddEdge(r.Regulator, r.Target, sign)
	}
	return out
}

// StronglyConnectedComponents returns the non-trivial SCCs of the full
// graph, size-sorted descending.
func (g *RegulatoryGraph) StronglyConnectedComponents() [][]VariableId {
	sg := g.toSdGraph()
	return sg.RestrictedSCC(sg.AllVertices())
}

// RestrictedStronglyConnectedComponents returns the non-trivial SCCs of
// the subgraph induced by restriction.
func (g *RegulatoryGraph) RestrictedStronglyConnectedComponents(restriction sdg.VertexSet) [][]VariableId {
	return g.toSdGraph().RestrictedSCC(restriction)
}

// TransitiveRegulators returns the variables that transitively regulate v.
func (g *RegulatoryGraph) TransitiveRegulators(v VariableId) sdg.VertexSet {
	sg := g.toSdGraph()
	return sg.BackwardReachable(sdg.NewVertexSet(v), sg.AllVertices())
}

// TransitiveTargets returns the variables transitively regulated by v.
func (g *RegulatoryGraph) TransitiveTargets(v VariableId) sdg.VertexSet {
	sg := g.toSdGraph()
	return sg.ForwardReachable(sdg.NewVertexSet(v), sg.AllVertices())
}

// ShortestCycle returns the shortest simple cycle through pivot in the
// full graph, or nil if none exists.
func (g *RegulatoryGraph) ShortestCycle(pivot VariableId) []VariableId {
	sg := g.toSdGraph()
	return sg.ShortestCycle(sg.AllVertices(), pivot, sdg.Unbounded)
}

// ShortestParityCycle returns the shortest simple cycle through pivot
// whose sign-sum equals parity, or nil if none exists.
func (g *RegulatoryGraph) ShortestParityCycle(pivot VariableId, parity Sign) []VariableId {
	sg := g.toSdGraph()
	return sg.ShortestParityCycle(sg.AllVertices(), pivot, parity, sdg.Unbounded)
}

// FeedbackVertexSet returns a (not necessarily minimum) feedback vertex
// set for the full graph.
func (g *RegulatoryGraph) FeedbackVertexSet() sdg.VertexSet {
	sg := g.toSdGraph()
	return sg.RestrictedFeedbackVertexSet(sg.AllVertices())
}

// ParityFeedbackVertexSet returns a (not necessarily minimum) feedback
// vertex set for cycles of the given parity only.
func (g *RegulatoryGraph) ParityFeedbackVertexSet(parity Sign) sdg.VertexSet {
	sg := g.toSdGraph()
	return sg.RestrictedParityFeedbackVertexSet(sg.AllVertices(), parity)
}

// IndependentCycles returns a (not necessarily maximal) set of pairwise
// vertex-disjoint cycles for the full graph.
func (g *RegulatoryGraph) IndependentCycles() [][]VariableId {
	sg := g.toSdGraph()
	return sg.RestrictedIndependentCycles(sg.AllVertices())
}

// IndependentParityCycles is IndependentCycles restricted to cycles of
// the given parity.
func (g *RegulatoryGraph) IndependentParityCycles(parity Sign) [][]VariableId {
	sg := g.toSdGraph()
	return sg.RestrictedIndependentParityCycles(sg.AllVertices(), parity)
}

// ExactFVS returns a minimum-cardinality feedback vertex set, computed by
// the cutting-plane solver in package exactfvs. When opts is nil, a
// default BruteForceOracle reference oracle and no deadline are used.
func (g *RegulatoryGraph) ExactFVS(opts *exactfvs.Options) (sdg.VertexSet, error) {
	sg := g.toSdGraph()
	regulators := make([][]VariableId, g.numVars)
	targets := make([][]VariableId, g.numVars)
	for v := 0; v < g.numVars; v++ {
		regulators[v] = g.Regulators(v)
		targets[v] = g.Targets(v)
	}
	return exactfvs.Solve(sg, regulators, targets, opts)
}
