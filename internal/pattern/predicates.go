package pattern

import "github.com/funvibe/patcover/internal/core"

// IsAbsurd reports whether p or any of its sub-patterns is absurd.
func IsAbsurd(p Pattern) bool {
	if _, ok := p.(*AbsurdPattern); ok {
		return true
	}
	return IsAbsurdRow(p.SubPatterns())
}

// IsAbsurdRow reports whether any pattern of row is absurd.
func IsAbsurdRow(row []Pattern) bool {
	for _, p := range row {
		if IsAbsurd(p) {
			return true
		}
	}
	return false
}

// IsTrivial reports whether p accepts every value: a binding, or a tuple
// whose fields are all trivial.
func IsTrivial(p Pattern) bool {
	switch pat := p.(type) {
	case *BindingPattern:
		return true
	case *TuplePattern:
		return IsTrivialRow(pat.Fields)
	default:
		return false
	}
}

func IsTrivialRow(row []Pattern) bool {
	for _, p := range row {
		if !IsTrivial(p) {
			return false
		}
	}
	return true
}

// Bindings lists the variables bound by p from left to right.
func Bindings(p Pattern) []*core.Binding {
	var result []*core.Binding
	collectBindings(p, &result)
	return result
}

func RowBindings(row []Pattern) []*core.Binding {
	var result []*core.Binding
	for _, p := range row {
		collectBindings(p, &result)
	}
	return result
}

func collectBindings(p Pattern, acc *[]*core.Binding) {
	if b, ok := p.(*BindingPattern); ok {
		*acc = append(*acc, b.Binding)
		return
	}
	for _, sub := range p.SubPatterns() {
		collectBindings(sub, acc)
	}
}
