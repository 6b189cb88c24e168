package staticconstraints_test

import (
	"testing"

	"github.com/boolnet/regnet/graph"
	"github.com/boolnet/regnet/paramnet"
	"github.com/boolnet/regnet/staticconstraints"
	"github.com/boolnet/regnet/symbolic"
)

func signPtr(s graph.Sign) *graph.Sign { return &s }

func TestExplicitActivationAdmitsExactlyOneValuation(t *testing.T) {
	// a -> t, $t: a. No free parameters: the explicit function already
	// fixes everything (and a is given a constant function), so the
	// compiled predicate is either the whole (singleton) space or empty.
	g := graph.NewRegulatoryGraph(2)
	if err := g.AddRegulation(graph.Regulation{Regulator: 0, Target: 1, Sign: signPtr(graph.Positive)}); err != nil {
		t.Fatalf("AddRegulation: %v", err)
	}
	bn := paramnet.NewBooleanNetwork(g)
	if err := bn.SetUpdateFunction(1, paramnet.Var{Variable: 0}); err != nil {
		t.Fatalf("SetUpdateFunction: %v", err)
	}
	fixInputs(t, bn, 0)

	enc, err := symbolic.NewNaiveEncoder(bn)
	if err != nil {
		t.Fatalf("NewNaiveEncoder: %v", err)
	}
	predicate, err := staticconstraints.BuildStaticConstraints(bn, enc)
	if err != nil {
		t.Fatalf("BuildStaticConstraints: %v", err)
	}
	if predicate.Cardinality() != 1 {
		t.Fatalf("expected exactly 1 admissible valuation, got %d", predicate.Cardinality())
	}
}

func TestExplicitViolatedMonotonicityIsUnsatisfiable(t *testing.T) {
	// a -> t (declared activation), but $t: !a actually decreases — the
	// compiled predicate must be unsatisfiable.
	g := graph.NewRegulatoryGraph(2)
	if err := g.AddRegulation(graph.Regulation{Regulator: 0, Target: 1, Sign: signPtr(graph.Positive)}); err != nil {
		t.Fatalf("AddRegulation: %v", err)
	}
	bn := paramnet.NewBooleanNetwork(g)
	if err := bn.SetUpdateFunction(1, paramnet.Not{Operand: paramnet.Var{Variable: 0}}); err != nil {
		t.Fatalf("SetUpdateFunction: %v", err)
	}

	enc, err := symbolic.NewNaiveEncoder(bn)
	if err != nil {
		t.Fatalf("NewNaiveEncoder: %v", err)
	}
	predicate, err := staticconstraints.BuildStaticConstraints(bn, enc)
	if err != nil {
		t.Fatalf("BuildStaticConstraints: %v", err)
	}
	if !predicate.IsEmpty() {
		t.Fatalf("expected unsatisfiable predicate, got cardinality %d", predicate.Cardinality())
	}
}

// TestImplicitTwoRegulatorsBothActivatingObservable exercises two
// activating, observable regulators into an implicit target. The
// admissible parameterizations are exactly the
// boolean functions of two variables that are monotone increasing in
// both inputs AND essential in both (each input must actually matter) —
// that set is {AND, OR}, cardinality 2, not 3: of the six monotone
// functions of two variables (the two constants, AND, OR, and the two
// projections), the constants fail observability in both inputs and each
// projection fails observability in the input it ignores.
func TestImplicitTwoRegulatorsBothActivatingObservable(t *testing.T) {
	g := graph.NewRegulatoryGraph(3)
	mustAddObservableRegulation(t, g, 0, 2, graph.Positive)
	mustAddObservableRegulation(t, g, 1, 2, graph.Positive)
	bn := paramnet.NewBooleanNetwork(g)
	fixInputs(t, bn, 0, 1)

	enc, err := symbolic.NewNaiveEncoder(bn)
	if err != nil {
		t.Fatalf("NewNaiveEncoder: %v", err)
	}
	predicate, err := staticconstraints.BuildStaticConstraints(bn, enc)
	if err != nil {
		t.Fatalf("BuildStaticConstraints: %v", err)
	}
	if got := predicate.Cardinality(); got != 2 {
		t.Fatalf("expected 2 admissible valuations (AND, OR), got %d", got)
	}
}

// TestImplicitFourAlternatingRegulatorsMonotonicityOnly exercises a
// four-regulator case with no observability requirement: the admissible
// parameter space is every
// monotone boolean function of four variables (each input's direction
// fixed by its declared sign) — the fourth Dedekind number, 168.
func TestImplicitFourAlternatingRegulatorsMonotonicityOnly(t *testing.T) {
	g := graph.NewRegulatoryGraph(5)
	mustAddRegulation(t, g, 0, 4, graph.Positive)
	mustAddRegulation(t, g, 1, 4, graph.Negative)
	mustAddRegulation(t, g, 2, 4, graph.Positive)
	mustAddRegulation(t, g, 3, 4, graph.Negative)
	bn := paramnet.NewBooleanNetwork(g)
	fixInputs(t, bn, 0, 1, 2, 3)

	enc, err := symbolic.NewNaiveEncoder(bn)
	if err != nil {
		t.Fatalf("NewNaiveEncoder: %v", err)
	}
	predicate, err := staticconstraints.BuildStaticConstraints(bn, enc)
	if err != nil {
		t.Fatalf("BuildStaticConstraints: %v", err)
	}
	if got := predicate.Cardinality(); got != 168 {
		t.Fatalf("expected the fourth Dedekind number 168 admissible valuations, got %d", got)
	}
}

// TestImplicitTwoRegulatorsMonotonicityWithoutObservability exercises two
// monotone, non-observable regulators of opposite sign. Without the
// observability filter, admissible parameterizations
// are all six monotone functions of two variables (the second Dedekind
// number); flipping one input's required direction is a bijection on the
// monotone lattice, so the count is unaffected by the sign choice.
func TestImplicitTwoRegulatorsMonotonicityWithoutObservability(t *testing.T) {
	g := graph.NewRegulatoryGraph(3)
	mustAddRegulation(t, g, 0, 2, graph.Positive)
	mustAddRegulation(t, g, 1, 2, graph.Negative)
	bn := paramnet.NewBooleanNetwork(g)
	fixInputs(t, bn, 0, 1)

	enc, err := symbolic.NewNaiveEncoder(bn)
	if err != nil {
		t.Fatalf("NewNaiveEncoder: %v", err)
	}
	predicate, err := staticconstraints.BuildStaticConstraints(bn, enc)
	if err != nil {
		t.Fatalf("BuildStaticConstraints: %v", err)
	}
	if got := predicate.Cardinality(); got != 6 {
		t.Fatalf("expected 6 admissible valuations, got %d", got)
	}
}

// fixInputs gives each listed variable a constant explicit update
// function. A variable with no regulators and no update function is
// implicit and carries one free parameter bit, which would double the
// admissible count; fixing the regulators this way leaves only the
// target's own function to count.
func fixInputs(t *testing.T, bn *paramnet.BooleanNetwork, vars ...graph.VariableId) {
	t.Helper()
	for _, v := range vars {
		if err := bn.SetUpdateFunction(v, paramnet.Const{Value: false}); err != nil {
			t.Fatalf("SetUpdateFunction: %v", err)
		}
	}
}

func mustAddRegulation(t *testing.T, g *graph.RegulatoryGraph, regulator, target graph.VariableId, sign graph.Sign) {
	t.Helper()
	if err := g.AddRegulation(graph.Regulation{Regulator: regulator, Target: target, Sign: signPtr(sign)}); err != nil {
		t.Fatalf("AddRegulation: %v", err)
	}
}

func mustAddObservableRegulation(t *testing.T, g *graph.RegulatoryGraph, regulator, target graph.VariableId, sign graph.Sign) {
	t.Helper()
	if err := g.AddRegulation(graph.Regulation{Regulator: regulator, Target: target, Sign: signPtr(sign), Observable: true}); err != nil {
		t.Fatalf("AddRegulation: %v", err)
	}
}
