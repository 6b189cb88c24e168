package exactfvs

// BruteForceOracle is a reference DecisionOracle that enumerates
// candidate subsets directly instead of delegating to a BDD or SAT
// backend. It is exact and deterministic, at the cost of O(C(n,k))
// enumeration per Solve call — acceptable for the small candidate pools
// biological regulatory networks produce (small fan-in, and Solve's
// preprocessing step further prunes the candidate pool before the outer
// loop ever runs).
//
// It exists so exactfvs.Solve is independently testable without a
// production BDD/SAT backend; see DESIGN.md for why a real backend isn't
// wired here.
type BruteForceOracle struct {
	n        int
	clauses  [][]int
	exactlyK *exactlyKConstraint
	stack    []oracleSnapshot
}

type exactlyKConstraint struct {
	vars []int
	k    int
}

type oracleSnapshot struct {
	clauseLen int
	exactlyK  *exactlyKConstraint
}

// NewBruteForceOracle constructs an oracle ready for Reset.
func NewBruteForceOracle() *BruteForceOracle {
	return &BruteForceOracle{}
}

func (o *BruteForceOracle) Reset(n int) {
	o.n = n
	o.clauses = nil
	o.exactlyK = nil
	o.stack = nil
}

func (o *BruteForceOracle) AssertExactlyK(vars []int, k int) error {
	cp := make([]int, len(vars))
	copy(cp, vars)
	o.exactlyK = &exactlyKConstraint{vars: cp, k: k}
	return nil
}

func (o *BruteForceOracle) AssertDisjunction(vars []int) error {
	cp := make([]int, len(vars))
	copy(cp, vars)
	o.clauses = append(o.clauses, cp)
	return nil
}

func (o *BruteForceOracle) Push() {
	o.stack = append(o.stack, oracleSnapshot{clauseLen: len(o.clauses), exactlyK: o.exactlyK})
}

func (o *BruteForceOracle) Pop() {
	if len(o.stack) == 0 {
		return
	}
	top := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	o.clauses = o.clauses[:top.clauseLen]
	o.exactlyK = top.exactlyK
}

func (o *BruteForceOracle) Solve() (sat bool, model []bool, ok bool) {
	if o.exactlyK == nil || o.exactlyK.k < 0 || o.exactlyK.k > len(o.exactlyK.vars) {
		return false, nil, true
	}

	selected := make([]int, 0, o.exactlyK.k)
	found := o.search(o.exactlyK.vars, 0, o.exactlyK.k, &selected)
	if !found {
		return false, nil, true
	}

	model = make([]bool, o.n)
	for _, v := range selected {
		model[v] = true
	}
	return true, model, true
}

// search enumerates size-k subsets of vars[start:] in ascending
// lexicographic order, returning the first one satisfying every clause.
func (o *BruteForceOracle) search(vars []int, start, remaining int, selected *[]int) bool {
	if remaining == 0 {
		return o.satisfiesClauses(*selected)
	}
	for i := start; i <= len(vars)-remaining; i++ {
		*selected = append(*selected, vars[i])
		if o.search(vars, i+1, remaining-1, selected) {
			return true
		}
		*selected = (*selected)[:len(*selected)-1]
	}
	return false
}

func (o *BruteForceOracle) satisfiesClauses(selected []int) bool {
	chosen := make(map[int]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}
	for _, clause := range o.clauses {
		satisfied := false
		for _, v := range clause {
			if chosen[v] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
