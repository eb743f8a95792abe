package pattern

import (
	"strings"

	"github.com/funvibe/patcover/internal/core"
)

// Collector receives the bindings discovered by Unify.
type Collector interface {
	Collect(b *core.Binding, p Pattern)
}

type ignore struct{}

func (ignore) Collect(*core.Binding, Pattern) {}

// Ignore is a Collector that discards everything.
var Ignore Collector = ignore{}

// Subst maps bindings to patterns. Keys are compared by identity and kept in
// insertion order. The zero value is an empty Subst ready to use.
type Subst struct {
	keys []*core.Binding
	m    map[*core.Binding]Pattern
}

func NewSubst() *Subst {
	return &Subst{m: make(map[*core.Binding]Pattern)}
}

// Collect records b ↦ p. A later entry for the same binding replaces the
// earlier one but keeps its position.
func (s *Subst) Collect(b *core.Binding, p Pattern) {
	if s.m == nil {
		s.m = make(map[*core.Binding]Pattern)
	}
	if _, ok := s.m[b]; !ok {
		s.keys = append(s.keys, b)
	}
	s.m[b] = p
}

func (s *Subst) Get(b *core.Binding) (Pattern, bool) {
	p, ok := s.m[b]
	return p, ok
}

func (s *Subst) Len() int {
	return len(s.keys)
}

// Keys returns the bindings in insertion order.
func (s *Subst) Keys() []*core.Binding {
	return append([]*core.Binding(nil), s.keys...)
}

func (s *Subst) String() string {
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = k.String() + " := " + s.m[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SubstPattern replaces every binding of p found in s by its image. The
// result shares unchanged subtrees with p; p itself is never modified.
func SubstPattern(p Pattern, s *Subst) Pattern {
	switch pat := p.(type) {
	case *BindingPattern:
		if image, ok := s.Get(pat.Binding); ok {
			return image
		}
		return pat
	case *ConPattern:
		return &ConPattern{Definition: pat.Definition, Args: SubstRow(pat.Args, s)}
	case *TuplePattern:
		return &TuplePattern{Fields: SubstRow(pat.Fields, s)}
	default:
		return p
	}
}

func SubstRow(row []Pattern, s *Subst) []Pattern {
	result := make([]Pattern, len(row))
	for i, p := range row {
		result[i] = SubstPattern(p, s)
	}
	return result
}
