package ast

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/gconf"
	"github.com/raftario/possum"
	"github.com/raftario/possum/lexer"
)

// Parse parses a single expression from a token sequence. It always returns an
// expression tree, even for malformed input, together with the syntax errors found.
// Tokens remaining after the expression are reported as one TrailingInput error.
//
// The tokens should be free of lexical errors, which clients report separately.
func Parse(ts Tokens) (Expr, []*ParseError) {
	p := &parser{}
	expr, rest := expression(p, ts)
	if !rest.Exhausted() {
		trailing := rest.Rest()
		first := trailing[0]
		span := first.Span.Extend(trailing[len(trailing)-1].Span)
		p.errors = append(p.errors, newError(TrailingInput, span, &first))
	}
	tracer().Debugf("parsed %d tokens, %d errors", ts.Len(), len(p.errors))
	return expr, p.errors
}

// parser collects syntax errors during a parse. The read position is not part of
// the parser, but is handed from level to level as a Tokens value.
type parser struct {
	errors []*ParseError
}

// level is a parse function for one precedence level of the grammar.
type level func(p *parser, ts Tokens) (Expr, Tokens)

// We need this for the sets of operators. It sorts scalars by tag.
func scalarComparator(s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(lexer.Scalar)), int(s2.(lexer.Scalar)))
}

var (
	equalityOps       = treeset.NewWith(scalarComparator, lexer.Equal, lexer.NotEqual)
	comparisonOps     = treeset.NewWith(scalarComparator, lexer.GreaterEqual, lexer.LessEqual, lexer.Greater, lexer.Less)
	additionOps       = treeset.NewWith(scalarComparator, lexer.Plus, lexer.Minus)
	multiplicationOps = treeset.NewWith(scalarComparator, lexer.Star, lexer.Slash, lexer.Modulo)
	unaryOps          = treeset.NewWith(scalarComparator, lexer.Bang, lexer.Plus, lexer.Minus)
)

// expression is the entry level of the grammar:
//
//	expression     := equality
//	equality       := comparison ( ("==" | "!=") comparison )*
//	comparison     := addition ( (">=" | "<=" | ">" | "<") addition )*
//	addition       := multiplication ( ("+" | "-") multiplication )*
//	multiplication := unary ( ("*" | "/" | "%") unary )*
//
// It is set up in init, as primary refers back to it.
var expression level

func init() {
	multiplication := binaryLevel(unary, multiplicationOps)
	addition := binaryLevel(multiplication, additionOps)
	comparison := binaryLevel(addition, comparisonOps)
	expression = binaryLevel(comparison, equalityOps)
}

// binaryLevel creates the parse function for a level of left-associative binary
// operators, which combines operands parsed by next.
func binaryLevel(next level, operators *treeset.Set) level {
	return func(p *parser, ts Tokens) (Expr, Tokens) {
		lhs, ts := next(p, ts)
		for {
			op, ok := operatorAt(ts, operators)
			if !ok {
				return lhs, ts
			}
			_, ts, _ = ts.Next()
			var rhs Expr
			rhs, ts = next(p, ts)
			lhs = NewBinary(lhs, op, rhs)
		}
	}
}

//	unary := ("!" | "+" | "-") unary | primary
func unary(p *parser, ts Tokens) (Expr, Tokens) {
	op, ok := operatorAt(ts, unaryOps)
	if !ok {
		return primary(p, ts)
	}
	_, ts, _ = ts.Next()
	operand, ts := unary(p, ts)
	return NewUnary(op, operand), ts
}

// operatorAt checks if the next token is one of operators.
func operatorAt(ts Tokens, operators *treeset.Set) (Operator, bool) {
	t, ok := ts.Peek()
	if !ok || t.Class != lexer.ScalarClass || !operators.Contains(t.Scalar) {
		return Operator{}, false
	}
	return Operator{Scalar: t.Scalar, Span: t.Span}, true
}

//	primary := LITERAL | IDENTIFIER | "(" expression ")"
func primary(p *parser, ts Tokens) (Expr, Tokens) {
	t, next, ok := ts.Next()
	if !ok {
		return p.expectedExpression(ts)
	}
	switch t.Class {
	case lexer.LiteralClass:
		return NewLiteral(t.Lit, t.Span), next
	case lexer.IdentifierClass:
		return NewIdentifier(t.Ident, t.Span), next
	case lexer.ScalarClass:
		if t.Is(lexer.LeftParen) {
			return block(p, t, next)
		}
	}
	return p.expectedExpression(ts)
}

// block parses the remainder of a parenthesized expression. If the closing
// parenthesis is missing, the token found instead is left for the enclosing levels.
func block(p *parser, open lexer.Token, ts Tokens) (Expr, Tokens) {
	inner, ts := expression(p, ts)
	t, next, ok := ts.Next()
	if ok && t.Is(lexer.RightParen) {
		return &Block{Open: open.Span, Inner: inner, Close: t.Span}, next
	}
	end := inner.Span().To()
	err := newError(UnclosedBlock, open.Span, nil)
	if ok {
		err.Token = &t
	}
	tracer().Debugf("unclosed block at %s", open.Span)
	p.errors = append(p.errors, err)
	return &Block{Open: open.Span, Inner: inner, Close: possum.MakeSpan(end, end)}, ts
}

// expectedExpression performs error recovery: it records an error, consumes exactly
// one token and returns an Invalid node for it.
func (p *parser) expectedExpression(ts Tokens) (Expr, Tokens) {
	t, next, ok := ts.Next()
	if !ok {
		span := ts.end()
		stuck(fmt.Sprintf("expected an expression at %s, but input is exhausted", span))
		p.errors = append(p.errors, newError(ExpectedExpression, span, nil))
		return NewInvalid(span), ts
	}
	tracer().Debugf("expected an expression at %s, found %s", t.Span, t)
	p.errors = append(p.errors, newError(ExpectedExpression, t.Span, &t))
	return NewInvalid(t.Span), next
}

func stuck(msg string) {
	tracer().Infof("%s", msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`Parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}
