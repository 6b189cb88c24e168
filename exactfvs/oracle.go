package exactfvs

// DecisionOracle is the four-operation decision-procedure contract the
// outer cutting-plane loop is written against, so a production caller can
// swap in a BDD-backed or pseudo-Boolean SAT backend without touching
// Solve's control flow.
//
// Boolean variables are referred to by a dense index [0, n), assigned by
// Reset; in Solve, index i corresponds to the i-th candidate variable in
// ascending id order.
type DecisionOracle interface {
	// Reset discards all assertions and prepares the oracle to reason
	// about n boolean variables.
	Reset(n int)

	// AssertExactlyK asserts that exactly k of the booleans named by vars
	// are true.
	AssertExactlyK(vars []int, k int) error

	// AssertDisjunction asserts that at least one of the booleans named
	// by vars is true.
	AssertDisjunction(vars []int) error

	// Push saves the current assertion set so it can be restored by a
	// matching Pop.
	Push()

	// Pop restores the assertion set saved by the most recent Push.
	Pop()

	// Solve decides satisfiability of the current assertion set. model is
	// valid (one entry per variable index) only when sat is true. ok is
	// false only when the oracle could not decide an instance that is, in
	// principle, decidable.
	Solve() (sat bool, model []bool, ok bool)
}
