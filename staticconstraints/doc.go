// Package staticconstraints compiles a Boolean network's declared
// regulation signs and observability flags into a single symbolic
// predicate over the network's parameter space: the set of
// parameterizations under which every declared monotonicity and
// observability constraint holds.
//
// The package is generic over the predicate representation P, supplied
// by a symbolic.ParamEncoder[P] — it never inspects P beyond the
// algebraic operations that interface exposes.
package staticconstraints
