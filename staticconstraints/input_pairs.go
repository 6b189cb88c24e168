package staticconstraints

import "github.com/boolnet/regnet/graph"

// InputPairIterator enumerates pairs of input states to a regulation's
// target that differ only in the regulator's bit, the regulator's bit
// being 0 in the first state of each pair and 1 in the second. It covers
// every combination of the target's other regulators exactly once.
//
// Ported one-to-one from the source network library's
// InputStatesPairIterator / extend_table_index_to_state.
type InputPairIterator struct {
	regulators []graph.VariableId
	variable   graph.VariableId
	mask       int
	next       int
	tableSize  int
}

// NewInputPairIterator builds an iterator over the input pairs relevant
// to r, alternating r.Regulator.
func NewInputPairIterator(g *graph.RegulatoryGraph, r graph.Regulation) (*InputPairIterator, error) {
	regulators := g.Regulators(r.Target)
	pos := indexOf(regulators, r.Regulator)
	if pos < 0 {
		return nil, ErrRegulatorNotFound
	}
	return &InputPairIterator{
		regulators: regulators,
		variable:   r.Regulator,
		mask:       1 << uint(pos),
		tableSize:  1 << uint(len(regulators)),
	}, nil
}

// Next returns the next (inactive, active) state pair, where active is
// inactive with the alternated regulator's bit set. ok is false once
// every row has been produced.
func (it *InputPairIterator) Next() (inactive, active uint64, ok bool) {
	for it.next < it.tableSize {
		row := it.next
		it.next++
		if row&it.mask != 0 {
			continue
		}
		state := extendRowToState(row, it.regulators)
		return state, state | (uint64(1) << uint(it.variable)), true
	}
	return 0, 0, false
}

func indexOf(vs []graph.VariableId, target graph.VariableId) int {
	for i, v := range vs {
		if v == target {
			return i
		}
	}
	return -1
}

// extendRowToState places row's bits at the regulators' own variable
// positions: bit i of row becomes bit regulators[i] of the returned
// state, every other bit zero.
func extendRowToState(row int, regulators []graph.VariableId) uint64 {
	var state uint64
	for i, r := range regulators {
		if row>>uint(i)&1 == 1 {
			state |= uint64(1) << uint(r)
		}
	}
	return state
}
