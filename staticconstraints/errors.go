package staticconstraints

import "errors"

// ErrRegulatorNotFound reports that a regulation's declared regulator
// does not appear among its target's regulators in the underlying graph,
// so the input-pair enumeration has no bit position to alternate.
var ErrRegulatorNotFound = errors.New("staticconstraints: regulator not found among target's regulators")
