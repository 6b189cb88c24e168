package paramnet

import "github.com/boolnet/regnet/graph"

// UpdateExpr is the closed sum type for modeling an explicit update
// function: Const, Var, Not, And, Or, Xor, Iff, Param. Implementations
// are value types; an UpdateExpr tree is immutable once built.
type UpdateExpr interface {
	isUpdateExpr()
}

// Const is a constant boolean literal.
type Const struct {
	Value bool
}

// Var references the current value of a network variable.
type Var struct {
	Variable graph.VariableId
}

// Not is boolean negation.
type Not struct {
	Operand UpdateExpr
}

// And is boolean conjunction.
type And struct {
	Left, Right UpdateExpr
}

// Or is boolean disjunction.
type Or struct {
	Left, Right UpdateExpr
}

// Xor is boolean exclusive-or.
type Xor struct {
	Left, Right UpdateExpr
}

// Iff is boolean equivalence.
type Iff struct {
	Left, Right UpdateExpr
}

// Param references an uninterpreted parameter function applied to Args —
// the explicit-expression encoding of "some regulator's contribution is
// left to the symbolic parameter space" (e.g. a partially specified
// update function).
type Param struct {
	Name string
	Args []graph.VariableId
}

func (Const) isUpdateExpr() {}
func (Var) isUpdateExpr()   {}
func (Not) isUpdateExpr()   {}
func (And) isUpdateExpr()   {}
func (Or) isUpdateExpr()    {}
func (Xor) isUpdateExpr()   {}
func (Iff) isUpdateExpr()   {}
func (Param) isUpdateExpr() {}
