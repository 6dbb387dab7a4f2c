package ast

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/raftario/possum"
	"github.com/raftario/possum/lexer"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []string
	prune  bool // do not descend into blocks
}

func (r *recorder) Enter(expr Expr, level int) bool {
	r.events = append(r.events, fmt.Sprintf("%s>%T", strings.Repeat(" ", level), expr))
	_, isBlock := expr.(*Block)
	return !(r.prune && isBlock)
}

func (r *recorder) Exit(expr Expr, level int) {
	r.events = append(r.events, fmt.Sprintf("%s<%T", strings.Repeat(" ", level), expr))
}

func TestWalkOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.ast")
	defer teardown()
	//
	expr := parseOK(t, "-a * (b)")
	r := &recorder{}
	Walk(r, expr)
	assert.Equal(t, []string{
		">*ast.Binary",
		" >*ast.Unary",
		"  >*ast.Identifier",
		"  <*ast.Identifier",
		" <*ast.Unary",
		" >*ast.Block",
		"  >*ast.Identifier",
		"  <*ast.Identifier",
		" <*ast.Block",
		"<*ast.Binary",
	}, r.events)
	//
	r = &recorder{prune: true}
	Walk(r, expr)
	assert.Len(t, r.events, 8)
	assert.Equal(t, " <*ast.Block", r.events[6])
	//
	r = &recorder{}
	Walk(r, nil)
	assert.Empty(t, r.events)
}

func TestPrintLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.ast")
	defer teardown()
	//
	span := possum.Span{}
	for _, test := range []struct {
		expr  Expr
		sexpr string
	}{
		{NewLiteral(lexer.Integer(42), span), "42"},
		{NewLiteral(lexer.Float(0.5), span), "0.5"},
		{NewLiteral(lexer.Bool(false), span), "false"},
		{NewLiteral(lexer.String("a\nb"), span), `"a\nb"`},
		{NewLiteral(lexer.Char('\''), span), `'\''`},
		{NewLiteral(lexer.ByteString("\xff"), span), `b"\xff"`},
		{NewLiteral(lexer.Byte('z'), span), `b'z'`},
		{NewIdentifier("foo", span), "foo"},
		{NewInvalid(span), "<invalid>"},
		{nil, "<nil>"},
	} {
		assert.Equal(t, test.sexpr, String(test.expr))
	}
}
