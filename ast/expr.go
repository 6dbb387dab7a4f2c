package ast

import (
	"github.com/raftario/possum"
	"github.com/raftario/possum/lexer"
)

// Expr is a node of the expression tree. It is one of
//
//	*Binary, *Unary, *Literal, *Identifier, *Block, *Invalid
//
// Literal, Identifier and Block are primaries.
type Expr interface {
	Span() possum.Span
}

// Primary is an expression which is not built from operators.
type Primary interface {
	Expr
	isPrimary()
}

// Operator is an operator token of a binary or unary expression.
type Operator struct {
	Scalar lexer.Scalar
	Span   possum.Span
}

func (op Operator) String() string {
	return op.Scalar.Text()
}

// --- Operator expressions --------------------------------------------------

// Binary is an infix operation  Lhs Op Rhs.
type Binary struct {
	Lhs  Expr
	Op   Operator
	Rhs  Expr
	span possum.Span
}

// NewBinary creates a binary expression. Its span reaches from the start of lhs to the
// end of rhs.
func NewBinary(lhs Expr, op Operator, rhs Expr) *Binary {
	return &Binary{
		Lhs:  lhs,
		Op:   op,
		Rhs:  rhs,
		span: possum.MakeSpan(lhs.Span().From(), rhs.Span().To()),
	}
}

// Span returns the extent of the operation in the source text.
func (b *Binary) Span() possum.Span { return b.span }

// Unary is a prefix operation  Op Operand.
type Unary struct {
	Op      Operator
	Operand Expr
	span    possum.Span
}

// NewUnary creates a prefix expression. Its span reaches from the start of the operator
// to the end of the operand.
func NewUnary(op Operator, operand Expr) *Unary {
	return &Unary{
		Op:      op,
		Operand: operand,
		span:    possum.MakeSpan(op.Span.From(), operand.Span().To()),
	}
}

// Span returns the extent of the operation in the source text.
func (u *Unary) Span() possum.Span { return u.span }

// --- Primaries -------------------------------------------------------------

// Literal is a literal value, decoded by the lexer.
type Literal struct {
	Value lexer.Literal
	span  possum.Span
}

// NewLiteral wraps a literal value found at span.
func NewLiteral(value lexer.Literal, span possum.Span) *Literal {
	return &Literal{Value: value, span: span}
}

// Identifier is a name. Name is a substring of the source text.
type Identifier struct {
	Name string
	span possum.Span
}

// NewIdentifier creates an identifier found at span.
func NewIdentifier(name string, span possum.Span) *Identifier {
	return &Identifier{Name: name, span: span}
}

// Block is a parenthesized expression. Open and Close are the spans of the delimiters.
// For a block missing its closing parenthesis Close is empty and located at the end of
// Inner.
type Block struct {
	Open  possum.Span
	Inner Expr
	Close possum.Span
}

// IsClosed is false if the closing delimiter is missing.
func (b *Block) IsClosed() bool {
	return !b.Close.IsEmpty()
}

func (l *Literal) Span() possum.Span     { return l.span }
func (id *Identifier) Span() possum.Span { return id.span }
func (b *Block) Span() possum.Span       { return b.Open.Extend(b.Close) }

func (*Literal) isPrimary()    {}
func (*Identifier) isPrimary() {}
func (*Block) isPrimary()      {}

// --- Error recovery --------------------------------------------------------

// Invalid is a placeholder for input where an expression was expected but none could be
// found. It spans the token consumed during recovery, or is empty at the end of input.
type Invalid struct {
	span possum.Span
}

// NewInvalid creates a placeholder node covering span.
func NewInvalid(span possum.Span) *Invalid {
	return &Invalid{span: span}
}

// Span returns the input consumed during recovery.
func (inv *Invalid) Span() possum.Span { return inv.span }

var _ Primary = (*Literal)(nil)
var _ Primary = (*Identifier)(nil)
var _ Primary = (*Block)(nil)
var _ Expr = (*Invalid)(nil)
