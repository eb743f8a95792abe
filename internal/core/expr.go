package core

import (
	"strings"

	"github.com/funvibe/patcover/internal/config"
)

// Expr is a core expression. Types and values share one language, so the
// type of a field may mention the values bound by earlier fields.
type Expr interface {
	String() string
	exprNode()
}

// Binding is a variable introduced by a telescope or a pattern.
// Bindings are compared by pointer identity; Name is only a display hint.
type Binding struct {
	Name string
	Type Expr
}

func NewBinding(name string, typ Expr) *Binding {
	return &Binding{Name: name, Type: typ}
}

func (b *Binding) String() string {
	if b.Name == "" {
		return config.WildcardName
	}
	return b.Name
}

// Ref is a reference to a binding.
type Ref struct {
	Binding *Binding
}

func (e *Ref) String() string { return e.Binding.String() }
func (e *Ref) exprNode()      {}

// Universe is the type of types.
type Universe struct{}

func (e *Universe) String() string { return config.UniverseName }
func (e *Universe) exprNode()      {}

// DataCall is an instantiation of an inductive type, e.g. Vec(Nat, zero).
type DataCall struct {
	Data *DataDef
	Args []Expr
}

func (e *DataCall) String() string { return appString(e.Data.Name(), e.Args) }
func (e *DataCall) exprNode()      {}

// ConCall is a constructor applied to its fields.
type ConCall struct {
	Con  *ConstructorDef
	Args []Expr
}

func (e *ConCall) String() string { return appString(e.Con.Name(), e.Args) }
func (e *ConCall) exprNode()      {}

// FuncCall is a function applied to arguments. It reduces when the
// function has a body.
type FuncCall struct {
	Func *FunctionDef
	Args []Expr
}

func (e *FuncCall) String() string { return appString(e.Func.Name(), e.Args) }
func (e *FuncCall) exprNode()      {}

// ClassCall is an instantiation of a record type.
type ClassCall struct {
	Record *RecordDef
	Args   []Expr
}

func (e *ClassCall) String() string { return appString(e.Record.Name(), e.Args) }
func (e *ClassCall) exprNode()      {}

// Telescope returns the record's field telescope with the record parameters
// instantiated by the call arguments.
func (e *ClassCall) Telescope() *Telescope {
	return NewTelescope(e.Record.Fields, bindParams(e.Record.Params, e.Args))
}

// SigmaExpr is a dependent product type.
type SigmaExpr struct {
	Params []*Binding
}

func (e *SigmaExpr) String() string {
	var out strings.Builder
	out.WriteString(config.SigmaKeyword)
	out.WriteString("(")
	for i, p := range e.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
		out.WriteString(" : ")
		out.WriteString(p.Type.String())
	}
	out.WriteString(")")
	return out.String()
}
func (e *SigmaExpr) exprNode() {}

func (e *SigmaExpr) Telescope() *Telescope {
	return NewTelescope(e.Params, nil)
}

// TupleExpr is a value of a sigma or record type.
type TupleExpr struct {
	Fields []Expr
}

func (e *TupleExpr) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (e *TupleExpr) exprNode() {}

func appString(name string, args []Expr) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
