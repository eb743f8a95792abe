package concrete

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/core"
)

// Renamer chooses display names for bindings.
type Renamer interface {
	NameFor(b *core.Binding) string
}

type renamer struct {
	taken func(string) bool
	used  map[string]int
}

// NewRenamer returns a Renamer that keeps binding names where it can and
// makes them unique by appending a number. Anonymous bindings are named after
// the head of their type: a Nat becomes n. Names for which taken reports true
// are never produced; taken may be nil.
func NewRenamer(taken func(name string) bool) Renamer {
	return &renamer{taken: taken, used: make(map[string]int)}
}

func (r *renamer) NameFor(b *core.Binding) string {
	base := b.Name
	if base == "" || base == config.WildcardName {
		base = nameFromType(b.Type)
	}

	name := base
	for r.isUsed(name) {
		r.used[base]++
		name = base + strconv.Itoa(r.used[base])
	}
	if _, ok := r.used[name]; !ok {
		r.used[name] = 0
	}
	return name
}

func (r *renamer) isUsed(name string) bool {
	if _, ok := r.used[name]; ok {
		return true
	}
	return r.taken != nil && r.taken(name)
}

func nameFromType(typ core.Expr) string {
	var head string
	switch t := core.Normalize(typ).(type) {
	case *core.DataCall:
		head = t.Data.Name()
	case *core.ClassCall:
		head = t.Record.Name()
	case *core.FuncCall:
		head = t.Func.Name()
	case *core.SigmaExpr:
		return "p"
	}
	r, _ := utf8.DecodeRuneInString(head)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return config.FallbackName
	}
	return strings.ToLower(string(r))
}
