package symbolic

import "errors"

// ErrTooManyParameters is returned by NewNaiveEncoder when a network's
// parameter space exceeds the 63 boolean parameters NaiveEncoder's
// uint64-bitmask ValuationSet representation can enumerate. It is a
// reference-implementation limit, not one a real symbolic engine need
// share.
var ErrTooManyParameters = errors.New("symbolic: parameter space exceeds naive encoder's 63-bit capacity")
