package symbolic

import (
	"github.com/boolnet/regnet/graph"
	"github.com/boolnet/regnet/paramnet"
)

// ParamEncoder is the external symbolic engine's contract, as consumed by
// package staticconstraints. P is opaque to the compiler: it is whatever
// predicate representation the concrete engine uses (a BDD node, an SDD,
// a naive valuation set). The compiler never introspects P beyond the
// operations this interface names.
type ParamEncoder[P any] interface {
	// MkTrue returns the predicate satisfied by every valuation.
	MkTrue() P
	// MkFalse returns the predicate satisfied by no valuation.
	MkFalse() P

	And(a, b P) P
	Or(a, b P) P
	Not(a P) P
	Xor(a, b P) P
	Iff(a, b P) P
	Implies(a, b P) P

	// ImplicitParam returns the predicate "the implicit update function
	// of target evaluates to true on input row", where row is a compact
	// table-row index (bit i of row is the i-th regulator of target, in
	// RegulatoryGraph.Regulators order).
	ImplicitParam(target graph.VariableId, row int) P

	// EvalExplicit symbolically evaluates expr under state (bit v of
	// state is variable v's value), returning the predicate over any
	// Param nodes expr contains.
	EvalExplicit(expr paramnet.UpdateExpr, state uint64) P
}
