package core

// Definition is a global descriptor: a data type, a constructor, a function
// or a record. Definitions are compared by pointer identity.
type Definition interface {
	Name() string
	definitionNode()
}

// DataDef is an inductive type, possibly an indexed family.
type DataDef struct {
	name         string
	Params       []*Binding
	Constructors []*ConstructorDef
}

func NewDataDef(name string, params []*Binding) *DataDef {
	return &DataDef{name: name, Params: params}
}

func (d *DataDef) Name() string    { return d.name }
func (d *DataDef) definitionNode() {}

// AddConstructor appends a constructor available for every instantiation of d.
// Field types may refer to the data parameters.
func (d *DataDef) AddConstructor(name string, fields []*Binding) *ConstructorDef {
	con := &ConstructorDef{name: name, Data: d, Fields: fields}
	d.Constructors = append(d.Constructors, con)
	return con
}

// AddIndexedConstructor appends a constructor that only exists for
// instantiations matching patterns, one pattern per data parameter.
// The patterns are expressions over patternBindings; field types may refer
// to patternBindings.
func (d *DataDef) AddIndexedConstructor(name string, patternBindings []*Binding, patterns []Expr, fields []*Binding) *ConstructorDef {
	con := &ConstructorDef{
		name:            name,
		Data:            d,
		PatternBindings: patternBindings,
		Patterns:        patterns,
		Fields:          fields,
	}
	d.Constructors = append(d.Constructors, con)
	return con
}

func (d *DataDef) Call(args ...Expr) *DataCall {
	return &DataCall{Data: d, Args: args}
}

// ConstructorDef is one case of a DataDef.
type ConstructorDef struct {
	name            string
	Data            *DataDef
	PatternBindings []*Binding
	Patterns        []Expr // nil unless the constructor is indexed
	Fields          []*Binding
}

func (c *ConstructorDef) Name() string    { return c.name }
func (c *ConstructorDef) definitionNode() {}

func (c *ConstructorDef) IsIndexed() bool { return c.Patterns != nil }

func (c *ConstructorDef) Call(args ...Expr) *ConCall {
	return &ConCall{Con: c, Args: args}
}

// FunctionDef is a function. Functions used as pattern tags act as opaque
// pattern aliases; Body is nil for functions that never reduce.
type FunctionDef struct {
	name   string
	Params []*Binding
	Result Expr
	Body   Expr
}

func NewFunctionDef(name string, params []*Binding, result, body Expr) *FunctionDef {
	return &FunctionDef{name: name, Params: params, Result: result, Body: body}
}

func (f *FunctionDef) Name() string    { return f.name }
func (f *FunctionDef) definitionNode() {}

func (f *FunctionDef) Call(args ...Expr) *FuncCall {
	return &FuncCall{Func: f, Args: args}
}

// RecordDef is a finite product with named, possibly dependent fields.
type RecordDef struct {
	name   string
	Params []*Binding
	Fields []*Binding
}

func NewRecordDef(name string, params, fields []*Binding) *RecordDef {
	return &RecordDef{name: name, Params: params, Fields: fields}
}

func (r *RecordDef) Name() string    { return r.name }
func (r *RecordDef) definitionNode() {}

func (r *RecordDef) Call(args ...Expr) *ClassCall {
	return &ClassCall{Record: r, Args: args}
}
