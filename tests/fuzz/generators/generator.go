// Package generators builds random, well-typed pattern rows for fuzzing.
package generators

import (
	"math/rand"
	"strconv"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness. Once the data
// runs out every choice is 0, which always picks a leaf, so generation
// terminates.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

// Library declares the types generated patterns range over. Every type in
// Types is valid in a fixture that includes it.
const Library = `
data:
  - name: Option
    params: [{name: A, type: Type}]
    constructors:
      - name: none
      - name: some
        fields: [{name: x, type: A}]
records:
  - name: Point
    fields: [{name: x, type: Nat}, {name: y, type: Bool}]
`

// Types are the scrutinee types the generator knows how to fill.
var Types = []string{
	"Bool",
	"Nat",
	"Empty",
	"Option(Bool)",
	"Option(Nat)",
	"Option(Option(Bool))",
	"Point",
	"Sigma(n : Nat, b : Bool)",
}

// Generator generates random patterns.
type Generator struct {
	src   RandomSource
	depth int
	vars  int
}

const (
	MaxDepth   = 5
	MaxColumns = 3
)

func New(seed int64) *Generator {
	return &Generator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

// Intn exposes the random source's Intn method.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

// GenerateParams picks between one and MaxColumns scrutinee types.
func (g *Generator) GenerateParams() []string {
	count := g.src.Intn(MaxColumns) + 1
	params := make([]string, count)
	for i := range params {
		params[i] = Types[g.src.Intn(len(Types))]
	}
	return params
}

// GenerateRow generates one pattern per type.
func (g *Generator) GenerateRow(types []string) []string {
	row := make([]string, len(types))
	for i, typ := range types {
		row[i] = g.GeneratePattern(typ)
	}
	return row
}

// GeneratePattern generates a pattern of type typ.
func (g *Generator) GeneratePattern(typ string) string {
	if g.depth >= MaxDepth || g.src.Intn(4) == 0 {
		return g.generateLeaf()
	}
	g.depth++
	defer func() { g.depth-- }()

	switch {
	case typ == "Bool":
		if g.src.Intn(2) == 0 {
			return "true"
		}
		return "false"
	case typ == "Nat":
		if g.src.Intn(2) == 0 {
			return "zero"
		}
		return "suc(" + g.GeneratePattern("Nat") + ")"
	case typ == "Empty":
		return "()"
	case strings.HasPrefix(typ, "Option(") && strings.HasSuffix(typ, ")"):
		if g.src.Intn(2) == 0 {
			return "none"
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(typ, "Option("), ")")
		return "some(" + g.GeneratePattern(inner) + ")"
	case typ == "Point", strings.HasPrefix(typ, "Sigma("):
		return "(" + g.GeneratePattern("Nat") + ", " + g.GeneratePattern("Bool") + ")"
	default:
		return g.generateLeaf()
	}
}

func (g *Generator) generateLeaf() string {
	if g.src.Intn(3) == 0 {
		return "_"
	}
	g.vars++
	return "v" + strconv.Itoa(g.vars)
}
