package staticconstraints

import (
	"github.com/boolnet/regnet/graph"
	"github.com/boolnet/regnet/paramnet"
	"github.com/boolnet/regnet/symbolic"
)

// BuildStaticConstraints compiles every regulation's declared
// monotonicity and observability into a single conjoined predicate.
func BuildStaticConstraints[P any](bn *paramnet.BooleanNetwork, enc symbolic.ParamEncoder[P]) (P, error) {
	condition := enc.MkTrue()
	g := bn.RegulatoryGraph()

	for _, r := range g.Regulations() {
		expr, explicit := bn.UpdateFunction(r.Target)

		if r.HasSign() {
			var m P
			var err error
			if explicit {
				m, err = buildMonotonicityExplicit(enc, g, r, expr, *r.Sign)
			} else {
				m, err = buildMonotonicityImplicit(enc, g, r, *r.Sign)
			}
			if err != nil {
				var zero P
				return zero, err
			}
			condition = enc.And(condition, m)
		}

		if r.Observable {
			var o P
			var err error
			if explicit {
				o, err = buildObservabilityExplicit(enc, g, r, expr)
			} else {
				o, err = buildObservabilityImplicit(enc, g, r)
			}
			if err != nil {
				var zero P
				return zero, err
			}
			condition = enc.And(condition, o)
		}
	}

	return condition, nil
}

func buildMonotonicityImplicit[P any](enc symbolic.ParamEncoder[P], g *graph.RegulatoryGraph, r graph.Regulation, sign graph.Sign) (P, error) {
	condition := enc.MkTrue()
	it, err := NewInputPairIterator(g, r)
	if err != nil {
		var zero P
		return zero, err
	}
	regulators := g.Regulators(r.Target)
	for {
		inactiveState, activeState, ok := it.Next()
		if !ok {
			break
		}
		inactive := enc.ImplicitParam(r.Target, rowOf(inactiveState, regulators))
		active := enc.ImplicitParam(r.Target, rowOf(activeState, regulators))
		condition = enc.And(condition, buildMonotonicityPair(enc, inactive, active, sign))
	}
	return condition, nil
}

func buildObservabilityImplicit[P any](enc symbolic.ParamEncoder[P], g *graph.RegulatoryGraph, r graph.Regulation) (P, error) {
	condition := enc.MkFalse()
	it, err := NewInputPairIterator(g, r)
	if err != nil {
		var zero P
		return zero, err
	}
	regulators := g.Regulators(r.Target)
	for {
		inactiveState, activeState, ok := it.Next()
		if !ok {
			break
		}
		inactive := enc.ImplicitParam(r.Target, rowOf(inactiveState, regulators))
		active := enc.ImplicitParam(r.Target, rowOf(activeState, regulators))
		condition = enc.Or(condition, enc.Not(enc.Iff(inactive, active)))
	}
	return condition, nil
}

func buildMonotonicityExplicit[P any](enc symbolic.ParamEncoder[P], g *graph.RegulatoryGraph, r graph.Regulation, expr paramnet.UpdateExpr, sign graph.Sign) (P, error) {
	condition := enc.MkTrue()
	it, err := NewInputPairIterator(g, r)
	if err != nil {
		var zero P
		return zero, err
	}
	for {
		inactiveState, activeState, ok := it.Next()
		if !ok {
			break
		}
		inactive := enc.EvalExplicit(expr, inactiveState)
		active := enc.EvalExplicit(expr, activeState)
		condition = enc.And(condition, buildMonotonicityPair(enc, inactive, active, sign))
	}
	return condition, nil
}

func buildObservabilityExplicit[P any](enc symbolic.ParamEncoder[P], g *graph.RegulatoryGraph, r graph.Regulation, expr paramnet.UpdateExpr) (P, error) {
	condition := enc.MkFalse()
	it, err := NewInputPairIterator(g, r)
	if err != nil {
		var zero P
		return zero, err
	}
	for {
		inactiveState, activeState, ok := it.Next()
		if !ok {
			break
		}
		inactive := enc.EvalExplicit(expr, inactiveState)
		active := enc.EvalExplicit(expr, activeState)
		condition = enc.Or(condition, enc.Not(enc.Iff(inactive, active)))
	}
	return condition, nil
}

// buildMonotonicityPair: increasing (Activation) means f(0) => f(1);
// decreasing (Inhibition) is equivalent to f(1) => f(0).
func buildMonotonicityPair[P any](enc symbolic.ParamEncoder[P], inactive, active P, sign graph.Sign) P {
	if sign == graph.Positive {
		return enc.Implies(inactive, active)
	}
	return enc.Implies(active, inactive)
}

// rowOf recovers the compact table-row index from a state by reading
// each regulator's bit back out, inverse of extendRowToState.
func rowOf(state uint64, regulators []graph.VariableId) int {
	row := 0
	for i, r := range regulators {
		if state&(uint64(1)<<uint(r)) != 0 {
			row |= 1 << uint(i)
		}
	}
	return row
}
