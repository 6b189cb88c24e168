package sdg

// Sign is the monotonicity/parity tag attached to an edge of a signed
// directed graph. It forms an additive parity group: Positive is the
// identity, Negative is self-inverse.
type Sign int

const (
	// Positive marks an activating edge (or, as a monotonicity, Activation).
	Positive Sign = iota
	// Negative marks an inhibiting edge (or, as a monotonicity, Inhibition).
	Negative
)

// Add composes two signs under the parity group law:
//
//	Positive + Positive = Positive
//	Negative + Negative = Positive
//	Positive + Negative = Negative
//	Negative + Positive = Negative
func (s Sign) Add(other Sign) Sign {
	if s == other {
		return Positive
	}
	return Negative
}

// String renders the sign for diagnostics.
func (s Sign) String() string {
	if s == Positive {
		return "Positive"
	}
	return "Negative"
}
