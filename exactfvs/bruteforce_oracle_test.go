package exactfvs_test

import (
	"testing"

	"github.com/boolnet/regnet/exactfvs"
)

func TestBruteForceOracleSatisfiesDisjunctions(t *testing.T) {
	o := exactfvs.NewBruteForceOracle()
	o.Reset(4)
	if err := o.AssertExactlyK([]int{0, 1, 2, 3}, 2); err != nil {
		t.Fatalf("AssertExactlyK: %v", err)
	}
	if err := o.AssertDisjunction([]int{0, 1}); err != nil {
		t.Fatalf("AssertDisjunction: %v", err)
	}

	sat, model, ok := o.Solve()
	if !ok {
		t.Fatal("expected decidable result")
	}
	if !sat {
		t.Fatal("expected satisfiable")
	}
	count := 0
	for _, b := range model {
		if b {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected exactly 2 true entries, got %d", count)
	}
	if !model[0] && !model[1] {
		t.Fatalf("expected the disjunction {0,1} to be satisfied, got %v", model)
	}
}

func TestBruteForceOracleUnsatisfiable(t *testing.T) {
	o := exactfvs.NewBruteForceOracle()
	o.Reset(2)
	_ = o.AssertExactlyK([]int{0, 1}, 0)
	_ = o.AssertDisjunction([]int{0, 1})

	sat, _, ok := o.Solve()
	if !ok {
		t.Fatal("expected decidable result")
	}
	if sat {
		t.Fatal("expected unsatisfiable: 0 selected can't satisfy a disjunction over both")
	}
}

func TestBruteForceOraclePushPopRestoresState(t *testing.T) {
	o := exactfvs.NewBruteForceOracle()
	o.Reset(2)
	_ = o.AssertExactlyK([]int{0, 1}, 1)

	o.Push()
	_ = o.AssertDisjunction([]int{0})
	sat, model, _ := o.Solve()
	if !sat || !model[0] {
		t.Fatalf("expected vertex 0 selected, got sat=%v model=%v", sat, model)
	}

	o.Pop()
	_ = o.AssertDisjunction([]int{1})
	sat, model, _ = o.Solve()
	if !sat || !model[1] {
		t.Fatalf("expected vertex 1 selected after pop, got sat=%v model=%v", sat, model)
	}
}
