/*
Package ast implements the expression parser of possum and the tree it produces.

The parser is a hand-written precedence-climbing parser with one token of
lookahead. Precedence levels, from loosest to tightest binding:

	==  !=             equality
	>=  <=  >  <       comparison
	+  -               addition
	*  /  %            multiplication
	!  +  -            unary prefix
	literal, identifier, ( expression )

All binary operators are left-associative.

Parsing never fails outright. When no primary production matches, the parser
records a ParseError, consumes exactly one token and places an Invalid node into
the tree. Clients receive a best-effort tree together with every error found in
one pass:

	tokens, lexerrs := lexer.Tokenize("1 + } * 2")
	expr, errs := ast.Parse(ast.NewTokens(tokens))
	fmt.Println(ast.String(expr))   // (+ 1 (* <invalid> 2))

Every node knows its span in the source text. Spans of composite nodes are
computed once, when the node is constructed, and always contain the spans of all
children.

Configuration

If the global configuration flag "panic-on-parser-stuck" is set, the parser
panics instead of recovering when it needs an expression but has run out of
tokens. This is a debugging aid only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The possum Authors

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'possum.ast'.
func tracer() tracing.Trace {
	return tracing.Select("possum.ast")
}
