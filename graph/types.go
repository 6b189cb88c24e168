package graph

import "github.com/boolnet/regnet/sdg"

// VariableId is a dense integer index into [0, n) identifying one
// variable of a RegulatoryGraph.
type VariableId = int

// Sign is re-exported from sdg: a regulation's sign and an SdG edge's
// sign are the same notion.
type Sign = sdg.Sign

// Positive and Negative re-export sdg's two sign values for callers that
// only import this package.
const (
	Positive = sdg.Positive
	Negative = sdg.Negative
)

// Regulation is one directed, optionally-signed edge of a regulatory
// graph: regulator -> target, with an optional monotonicity sign and an
// observability flag.
type Regulation struct {
	Regulator  VariableId
	Target     VariableId
	Sign       *Sign // nil means sign-agnostic
	Observable bool
}

// HasSign reports whether the regulation declares a monotonicity sign.
func (r Regulation) HasSign() bool {
	return r.Sign != nil
}
