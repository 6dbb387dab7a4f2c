package ast

import (
	"strings"
)

// String renders an expression tree as an s-expression, e.g.
//
//	-1 + 2 * (x - 3)   ⇒   (+ (- 1) (* 2 (block (- x 3))))
//
// Operators are written by their source text, literals as Go literals. Invalid nodes
// print as <invalid>, blocks missing their closing parenthesis as (block… ).
func String(expr Expr) string {
	var b strings.Builder
	write(&b, expr)
	return b.String()
}

func write(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Binary:
		b.WriteString("(")
		b.WriteString(e.Op.String())
		b.WriteString(" ")
		write(b, e.Lhs)
		b.WriteString(" ")
		write(b, e.Rhs)
		b.WriteString(")")
	case *Unary:
		b.WriteString("(")
		b.WriteString(e.Op.String())
		b.WriteString(" ")
		write(b, e.Operand)
		b.WriteString(")")
	case *Block:
		if e.IsClosed() {
			b.WriteString("(block ")
		} else {
			b.WriteString("(block… ")
		}
		write(b, e.Inner)
		b.WriteString(")")
	case *Literal:
		b.WriteString(e.Value.String())
	case *Identifier:
		b.WriteString(e.Name)
	case *Invalid:
		b.WriteString("<invalid>")
	default:
		tracer().Errorf("unknown expression type %T", expr)
		b.WriteString("<?>")
	}
}
