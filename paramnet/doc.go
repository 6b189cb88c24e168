// Package paramnet attaches optional explicit update functions to a
// graph.RegulatoryGraph, producing a parameterized Boolean network: some
// variables have a known update expression, the rest are left implicit
// (an uninterpreted function of their regulators, to be constrained by
// package staticconstraints and realized by an external symbolic
// parameter space).
//
// Update expressions are a closed sum type (UpdateExpr) rather than a
// mutable tree walked by reflection, per the fold-not-reflect discipline
// a straightforward recursive evaluator wants.
package paramnet
