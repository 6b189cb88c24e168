package paramnet

import "github.com/boolnet/regnet/graph"

// BooleanNetwork pairs a regulatory graph with the subset of variables
// that have a known explicit update function. A variable absent from
// updates is implicit: its update function is an uninterpreted function
// of its regulators, constrained only by the static constraints of
// package staticconstraints.
type BooleanNetwork struct {
	graph   *graph.RegulatoryGraph
	updates map[graph.VariableId]UpdateExpr
}

// NewBooleanNetwork wraps g with no explicit update functions attached.
func NewBooleanNetwork(g *graph.RegulatoryGraph) *BooleanNetwork {
	return &BooleanNetwork{
		graph:   g,
		updates: make(map[graph.VariableId]UpdateExpr),
	}
}

// RegulatoryGraph returns the underlying regulation skeleton.
func (bn *BooleanNetwork) RegulatoryGraph() *graph.RegulatoryGraph {
	return bn.graph
}

// SetUpdateFunction attaches an explicit update expression to v,
// replacing any previously attached expression.
func (bn *BooleanNetwork) SetUpdateFunction(v graph.VariableId, expr UpdateExpr) error {
	if v < 0 || v >= bn.graph.NumVars() {
		return ErrVariableOutOfRange
	}
	bn.updates[v] = expr
	return nil
}

// UpdateFunction returns the explicit update expression attached to v, if
// any. ok is false when v is implicit.
func (bn *BooleanNetwork) UpdateFunction(v graph.VariableId) (expr UpdateExpr, ok bool) {
	expr, ok = bn.updates[v]
	return expr, ok
}

// IsImplicit reports whether v has no explicit update function attached.
func (bn *BooleanNetwork) IsImplicit(v graph.VariableId) bool {
	_, ok := bn.updates[v]
	return !ok
}
