package exactfvs

import "errors"

// ErrOracleUnknown is returned when a DecisionOracle reports an
// indeterminate result. Cardinality-constrained propositional formulas
// over a finite candidate set are always decidable, so Unknown is a fatal
// precondition violation, not a normal outcome the outer loop can recover
// from.
var ErrOracleUnknown = errors.New("exactfvs: decision oracle reported an indeterminate result on a decidable instance")
