package graph

// RegulatoryGraph is an append-only collection of variables and signed
// regulations. It owns no derived structures: every analysis query
// (queries.go) builds a fresh sdg.Graph from the current regulation list.
//
// RegulatoryGraph carries no internal lock: the analysis core is
// single-threaded and deterministic given its inputs, so synchronization
// would be dead weight rather than ambient texture worth keeping.
type RegulatoryGraph struct {
	numVars     int
	regulations []Regulation
}

// NewRegulatoryGraph allocates a graph over the dense variable range
// [0, numVars).
func NewRegulatoryGraph(numVars int) *RegulatoryGraph {
	return &RegulatoryGraph{numVars: numVars}
}

// NumVars returns the number of declared variables.
func (g *RegulatoryGraph) NumVars() int {
	return g.numVars
}

// Variables returns the dense id range [0, NumVars()) in ascending order.
func (g *RegulatoryGraph) Variables() []VariableId {
	ids := make([]VariableId, g.numVars)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// AddRegulation appends a regulation. It returns ErrVariableOutOfRange if
// either endpoint falls outside [0, NumVars()).
func (g *RegulatoryGraph) AddRegulation(r Regulation) error {
	if r.Regulator < 0 || r.Regulator >= g.numVars {
		return ErrVariableOutOfRange
	}
	if r.Target < 0 || r.Target >= g.numVars {
		return ErrVariableOutOfRange
	}
	g.regulations = append(g.regulations, r)
	return nil
}

// Regulations returns every declared regulation, in declaration order.
func (g *RegulatoryGraph) Regulations() []Regulation {
	return g.regulations
}

// Regulators returns the regulators of target, in declaration order, with
// duplicates removed but the first occurrence's position kept.
func (g *RegulatoryGraph) Regulators(target VariableId) []VariableId {
	var out []VariableId
	seen := make(map[VariableId]bool)
	for _, r := range g.regulations {
		if r.Target == target && !seen[r.Regulator] {
			seen[r.Regulator] = true
			out = append(out, r.Regulator)
		}
	}
	return out
}

// Targets returns the targets regulated by regulator, in declaration
// order, with duplicates removed but the first occurrence's position kept.
func (g *RegulatoryGraph) Targets(regulator VariableId) []VariableId {
	var out []VariableId
	seen := make(map[VariableId]bool)
	for _, r := range g.regulations {
		if r.Regulator == regulator && !seen[r.Target] {
			seen[r.Target] = true
			out = append(out, r.Target)
		}
	}
	return out
}
