package core

import "strings"

// Telescope is a cursor over an ordered sequence of typed fields where the
// type of a field may depend on the fields before it. It is immutable:
// Next and Advance return new cursors and never materialize the remaining
// types eagerly.
type Telescope struct {
	params []*Binding
	subst  Subst
	pos    int
}

// NewTelescope returns a cursor at the first of params. subst instantiates
// free variables of the parameter types (data or record parameters).
func NewTelescope(params []*Binding, subst Subst) *Telescope {
	return &Telescope{params: params, subst: subst}
}

// HasNext reports whether the cursor points at a field.
func (t *Telescope) HasNext() bool {
	return t != nil && t.pos < len(t.params)
}

// Binding is the declaration of the current field. Callers must check
// HasNext first.
func (t *Telescope) Binding() *Binding {
	return t.params[t.pos]
}

// TypeExpr is the type of the current field under the substitution built so
// far. Callers must check HasNext first.
func (t *Telescope) TypeExpr() Expr {
	return Apply(t.params[t.pos].Type, t.subst)
}

// Next moves past the current field without fixing its value: later types
// keep referring to the field's own binding.
func (t *Telescope) Next() *Telescope {
	return &Telescope{params: t.params, subst: t.subst, pos: t.pos + 1}
}

// Advance moves past the current field, substituting value for it in the
// types of the remaining fields.
func (t *Telescope) Advance(value Expr) *Telescope {
	if value == nil {
		return t.Next()
	}
	return &Telescope{params: t.params, subst: t.subst.Extend(t.params[t.pos], value), pos: t.pos + 1}
}

// Len is the number of remaining fields.
func (t *Telescope) Len() int {
	if t == nil {
		return 0
	}
	return len(t.params) - t.pos
}

func (t *Telescope) String() string {
	var parts []string
	for param := t; param.HasNext(); param = param.Next() {
		parts = append(parts, "("+param.Binding().String()+" : "+param.TypeExpr().String()+")")
	}
	return strings.Join(parts, " ")
}
