package paramnet

import "errors"

var (
	// ErrVariableOutOfRange is returned when an update function is
	// attached to a variable id outside the underlying graph's range.
	ErrVariableOutOfRange = errors.New("paramnet: variable id out of range")

	// ErrUnknownParameter is returned by Eval when an expression contains
	// a Param node and no lookup was supplied, or a node of an unknown
	// type. An error from the lookup itself is returned as is.
	ErrUnknownParameter = errors.New("paramnet: no value supplied for parameter")
)
