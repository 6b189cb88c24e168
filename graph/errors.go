package graph

import "errors"

var (
	// ErrVariableOutOfRange is returned when a VariableId falls outside
	// the graph's declared [0, NumVars()) range.
	ErrVariableOutOfRange = errors.New("graph: variable id out of range")

	// ErrSignlessRegulation describes a regulation without a declared
	// sign. No function returns it: the parity queries treat a sign-less
	// regulation as Positive, and the static-constraint compiler builds no
	// monotonicity constraint for it.
	ErrSignlessRegulation = errors.New("graph: regulation has no declared sign")
)
