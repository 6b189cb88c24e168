package symbolic

import (
	"fmt"

	"github.com/boolnet/regnet/graph"
	"github.com/boolnet/regnet/paramnet"
)

// NaiveEncoder is a brute-force ParamEncoder[ValuationSet]: every boolean
// parameter the network's implicit functions and explicit Param nodes
// introduce gets a dedicated bit, and predicates are explicit sets of
// satisfying bit-valuations. It is not a BDD — see package doc — and is
// only practical for the small parameter spaces a handful of regulators
// produce.
type NaiveEncoder struct {
	numBits int
	bits    map[string]int
}

// NewNaiveEncoder inventories every implicit variable's truth-table rows
// and every Param node reachable from an explicit update function,
// assigning each a dedicated parameter bit.
func NewNaiveEncoder(bn *paramnet.BooleanNetwork) (*NaiveEncoder, error) {
	enc := &NaiveEncoder{bits: make(map[string]int)}

	g := bn.RegulatoryGraph()
	for _, v := range g.Variables() {
		if bn.IsImplicit(v) {
			rows := 1 << len(g.Regulators(v))
			for row := 0; row < rows; row++ {
				enc.allocate(implicitKey(v, row))
			}
			continue
		}
		expr, _ := bn.UpdateFunction(v)
		enc.inventoryParams(expr)
	}

	if enc.numBits >= 64 {
		return nil, ErrTooManyParameters
	}
	return enc, nil
}

func (enc *NaiveEncoder) allocate(key string) int {
	if i, ok := enc.bits[key]; ok {
		return i
	}
	i := enc.numBits
	enc.bits[key] = i
	enc.numBits++
	return i
}

func (enc *NaiveEncoder) inventoryParams(expr paramnet.UpdateExpr) {
	switch e := expr.(type) {
	case paramnet.Not:
		enc.inventoryParams(e.Operand)
	case paramnet.And:
		enc.inventoryParams(e.Left)
		enc.inventoryParams(e.Right)
	case paramnet.Or:
		enc.inventoryParams(e.Left)
		enc.inventoryParams(e.Right)
	case paramnet.Xor:
		enc.inventoryParams(e.Left)
		enc.inventoryParams(e.Right)
	case paramnet.Iff:
		enc.inventoryParams(e.Left)
		enc.inventoryParams(e.Right)
	case paramnet.Param:
		rows := 1 << len(e.Args)
		for row := 0; row < rows; row++ {
			enc.allocate(paramKey(e.Name, e.Args, row))
		}
	}
}

func implicitKey(target graph.VariableId, row int) string {
	return fmt.Sprintf("implicit|%d|%d", target, row)
}

func paramKey(name string, args []graph.VariableId, row int) string {
	return fmt.Sprintf("param|%s|%v|%d", name, args, row)
}

func (enc *NaiveEncoder) MkTrue() ValuationSet  { return fullSet(enc.numBits) }
func (enc *NaiveEncoder) MkFalse() ValuationSet { return emptySet(enc.numBits) }

func (enc *NaiveEncoder) And(a, b ValuationSet) ValuationSet { return a.and(b) }
func (enc *NaiveEncoder) Or(a, b ValuationSet) ValuationSet  { return a.or(b) }
func (enc *NaiveEncoder) Not(a ValuationSet) ValuationSet    { return a.not() }
func (enc *NaiveEncoder) Xor(a, b ValuationSet) ValuationSet { return a.xor(b) }

func (enc *NaiveEncoder) Iff(a, b ValuationSet) ValuationSet {
	return enc.Or(enc.And(a, b), enc.And(enc.Not(a), enc.Not(b)))
}

func (enc *NaiveEncoder) Implies(a, b ValuationSet) ValuationSet {
	return enc.Or(enc.Not(a), b)
}

// ImplicitParam implements ParamEncoder.
func (enc *NaiveEncoder) ImplicitParam(target graph.VariableId, row int) ValuationSet {
	return enc.bitPredicate(implicitKey(target, row))
}

func (enc *NaiveEncoder) bitPredicate(key string) ValuationSet {
	bit, ok := enc.bits[key]
	if !ok {
		return enc.MkFalse()
	}
	out := emptySet(enc.numBits)
	total := uint64(1) << uint(enc.numBits)
	for v := uint64(0); v < total; v++ {
		if v&(1<<uint(bit)) != 0 {
			out.members[v] = struct{}{}
		}
	}
	return out
}

// EvalExplicit implements ParamEncoder.
func (enc *NaiveEncoder) EvalExplicit(expr paramnet.UpdateExpr, state uint64) ValuationSet {
	switch e := expr.(type) {
	case paramnet.Const:
		if e.Value {
			return enc.MkTrue()
		}
		return enc.MkFalse()
	case paramnet.Var:
		if state&(1<<uint(e.Variable)) != 0 {
			return enc.MkTrue()
		}
		return enc.MkFalse()
	case paramnet.Not:
		return enc.Not(enc.EvalExplicit(e.Operand, state))
	case paramnet.And:
		return enc.And(enc.EvalExplicit(e.Left, state), enc.EvalExplicit(e.Right, state))
	case paramnet.Or:
		return enc.Or(enc.EvalExplicit(e.Left, state), enc.EvalExplicit(e.Right, state))
	case paramnet.Xor:
		return enc.Xor(enc.EvalExplicit(e.Left, state), enc.EvalExplicit(e.Right, state))
	case paramnet.Iff:
		return enc.Iff(enc.EvalExplicit(e.Left, state), enc.EvalExplicit(e.Right, state))
	case paramnet.Param:
		row := 0
		for i, a := range e.Args {
			if state&(1<<uint(a)) != 0 {
				row |= 1 << uint(i)
			}
		}
		return enc.bitPredicate(paramKey(e.Name, e.Args, row))
	default:
		return enc.MkFalse()
	}
}
