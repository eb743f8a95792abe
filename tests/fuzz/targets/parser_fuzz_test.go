package targets

import (
	"testing"

	"github.com/funvibe/patcover/internal/parser"
	"github.com/funvibe/patcover/internal/prettyprinter"
)

// FuzzParsePattern checks that the parser never panics and that printing a
// parsed pattern is a fixed point: print(parse(print(p))) == print(p).
func FuzzParsePattern(f *testing.F) {
	for _, seed := range []string{
		"_", "x", "zero", "suc(n)", "some(suc(_))", "()", "(a, b)", "(a,)",
		"vcons(x, vnil)", "suc(", "((", "(a,,b)", ")",
	} {
		f.Add(seed)
	}
	LoadCorpus(f, TestdataDir())

	f.Fuzz(func(t *testing.T, input string) {
		p, errs := parser.ParsePatternString(input)
		if len(errs) > 0 || p == nil {
			return
		}
		printed := prettyprinter.Print(p)

		again, errs := parser.ParsePatternString(printed)
		if len(errs) > 0 {
			t.Fatalf("%q printed as %q does not parse: %v", input, printed, errs[0])
		}
		if reprinted := prettyprinter.Print(again); reprinted != printed {
			t.Errorf("%q: printed %q, reprinted %q", input, printed, reprinted)
		}
	})
}
