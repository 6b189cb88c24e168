// Package symbolic defines the contract through which package
// staticconstraints talks to an external symbolic parameter space — a
// parameter encoder interface — without knowing anything about how that
// space is represented.
//
// The real implementation (a binary/sentential decision diagram over
// boolean parameter variables) is an external black box outside this
// module's scope. This package ships only ParamEncoder, the generic
// interface, and NaiveEncoder, a brute-force reference implementation
// good enough to exercise and test the compiler against small networks.
package symbolic
