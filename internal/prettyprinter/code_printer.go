package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/patcover/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a single node.
func Print(node ast.Node) string {
	p := NewCodePrinter()
	if node == nil {
		return "<???>"
	}
	node.Accept(p)
	return p.String()
}

// PrintPatterns renders a clause row as a comma separated list.
func PrintPatterns(row []ast.Pattern) string {
	parts := make([]string, len(row))
	for i, pat := range row {
		parts[i] = Print(pat)
	}
	return strings.Join(parts, ", ")
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

// writeList prints (a, b). A single element gets a trailing comma so it
// reads back as a tuple rather than as parentheses.
func (p *CodePrinter) writeList(n int, tuple bool, elem func(i int)) {
	p.write("(")
	for i := 0; i < n; i++ {
		if i > 0 {
			p.write(", ")
		}
		elem(i)
	}
	if tuple && n == 1 {
		p.write(",")
	}
	p.write(")")
}

func (p *CodePrinter) accept(n ast.Node) {
	if n == nil {
		p.write("<???>")
		return
	}
	n.Accept(p)
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(n.Value)
}

func (p *CodePrinter) VisitUniverseLiteral(n *ast.UniverseLiteral) {
	p.write("Type")
}

func (p *CodePrinter) VisitTupleLiteral(n *ast.TupleLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.writeList(len(n.Elements), true, func(i int) { p.accept(n.Elements[i]) })
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Function != nil {
		n.Function.Accept(p)
	} else {
		p.write("<???>")
	}
	p.writeList(len(n.Arguments), false, func(i int) { p.accept(n.Arguments[i]) })
}

func (p *CodePrinter) VisitSigmaType(n *ast.SigmaType) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("Sigma")
	p.writeList(len(n.Params), false, func(i int) {
		param := n.Params[i]
		if param.Name != nil {
			p.write(param.Name.Value)
			p.write(" : ")
		}
		p.accept(param.Type)
	})
}

func (p *CodePrinter) VisitWildcardPattern(n *ast.WildcardPattern) {
	p.write("_")
}

func (p *CodePrinter) VisitIdentifierPattern(n *ast.IdentifierPattern) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(n.Value)
}

func (p *CodePrinter) VisitConstructorPattern(n *ast.ConstructorPattern) {
	if n == nil {
		p.write("nil")
		return
	}
	if n.Name != nil {
		n.Name.Accept(p)
	} else {
		p.write("<???>")
	}
	p.writeList(len(n.Elements), false, func(i int) { p.accept(n.Elements[i]) })
}

func (p *CodePrinter) VisitTuplePattern(n *ast.TuplePattern) {
	if n == nil {
		p.write("nil")
		return
	}
	p.writeList(len(n.Elements), true, func(i int) { p.accept(n.Elements[i]) })
}
