package paramnet

// ParamLookup resolves an uninterpreted parameter applied to args against
// a fixed parameter valuation. Eval calls it once per Param node.
type ParamLookup func(name string, args []int) (bool, error)

// Eval folds expr to a concrete boolean under state (bit i of state holds
// variable i's value) and params. It never runs on an expression tree of
// unbounded depth built at runtime from untrusted input — paramnet trees
// are always constructed in Go by the caller — so no depth guard is
// needed.
func Eval(expr UpdateExpr, state uint64, params ParamLookup) (bool, error) {
	switch e := expr.(type) {
	case Const:
		return e.Value, nil
	case Var:
		return state&(1<<uint(e.Variable)) != 0, nil
	case Not:
		v, err := Eval(e.Operand, state, params)
		return !v, err
	case And:
		l, err := Eval(e.Left, state, params)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.Right, state, params)
		return l && r, err
	case Or:
		l, err := Eval(e.Left, state, params)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.Right, state, params)
		return l || r, err
	case Xor:
		l, err := Eval(e.Left, state, params)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.Right, state, params)
		return l != r, err
	case Iff:
		l, err := Eval(e.Left, state, params)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.Right, state, params)
		return l == r, err
	case Param:
		if params == nil {
			return false, ErrUnknownParameter
		}
		args := make([]int, len(e.Args))
		copy(args, e.Args)
		return params(e.Name, args)
	default:
		return false, ErrUnknownParameter
	}
}
