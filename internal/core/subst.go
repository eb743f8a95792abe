package core

// Subst maps bindings to the expressions that replace them.
type Subst map[*Binding]Expr

// Extend returns a copy of s with b mapped to e. s itself is left untouched,
// so telescopes sharing a substitution stay independent.
func (s Subst) Extend(b *Binding, e Expr) Subst {
	newSubst := make(Subst, len(s)+1)
	for k, v := range s {
		newSubst[k] = v
	}
	newSubst[b] = e
	return newSubst
}

func bindParams(params []*Binding, args []Expr) Subst {
	subst := make(Subst, len(params))
	for i, p := range params {
		if i >= len(args) {
			break
		}
		subst[p] = args[i]
	}
	return subst
}

// Apply replaces every reference to a binding in s by its image.
// Bindings are unique, so no renaming is needed to avoid capture; binders of
// sigma types are copied only so that their types can change.
func Apply(e Expr, s Subst) Expr {
	if e == nil || len(s) == 0 {
		return e
	}

	switch expr := e.(type) {
	case *Ref:
		if replacement, ok := s[expr.Binding]; ok {
			return replacement
		}
		return expr
	case *Universe:
		return expr
	case *DataCall:
		return &DataCall{Data: expr.Data, Args: applyAll(expr.Args, s)}
	case *ConCall:
		return &ConCall{Con: expr.Con, Args: applyAll(expr.Args, s)}
	case *FuncCall:
		return &FuncCall{Func: expr.Func, Args: applyAll(expr.Args, s)}
	case *ClassCall:
		return &ClassCall{Record: expr.Record, Args: applyAll(expr.Args, s)}
	case *TupleExpr:
		return &TupleExpr{Fields: applyAll(expr.Fields, s)}
	case *SigmaExpr:
		return &SigmaExpr{Params: applyParams(expr.Params, s)}
	default:
		return e
	}
}

func applyAll(exprs []Expr, s Subst) []Expr {
	newExprs := make([]Expr, len(exprs))
	for i, e := range exprs {
		newExprs[i] = Apply(e, s)
	}
	return newExprs
}

// applyParams substitutes into a telescope of binders. Every binder is
// replaced by a fresh binding and later types are redirected to it, so the
// result never shares bindings with params.
func applyParams(params []*Binding, s Subst) []*Binding {
	inner := s
	newParams := make([]*Binding, len(params))
	for i, p := range params {
		np := &Binding{Name: p.Name, Type: Apply(p.Type, inner)}
		newParams[i] = np
		inner = inner.Extend(p, &Ref{Binding: np})
	}
	return newParams
}
