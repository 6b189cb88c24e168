package sdg

import "errors"

var (
	// ErrVertexOutOfRange describes a VariableId outside [0, n). No
	// function of this package returns it; see the package doc.
	ErrVertexOutOfRange = errors.New("sdg: vertex id out of range")

	// ErrEmptyVertexSet describes an empty seed or pivot set. No function
	// of this package returns it; see the package doc.
	ErrEmptyVertexSet = errors.New("sdg: vertex set must not be empty")
)
