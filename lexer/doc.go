/*
Package lexer implements the tokenizer of possum.

The tokenizer is generated by lexmachine: every lexical rule is a regular expression,
and all of them are compiled into a single DFA the first time a source text is lexed.
The DFA always selects the longest match (maximal munch). Ties are broken by the
order of the rules, with fixed operator and keyword text taking priority over the
generic identifier pattern. Thus

	let      ⇒  Let
	letter   ⇒  Identifier("letter")
	==       ⇒  Equal

Lex returns a lazy sequence of tokens. Malformed lexemes do not stop the scan: each is
reported as an *Error carrying its span, and scanning continues behind it.

	for token, err := range lexer.Lex("-1 + 2 * (x - 3)") {
		if err != nil {
			// report err, which is of type *lexer.Error
			continue
		}
		fmt.Printf("%s %v\n", token.Span, token)
	}

Literals are decoded eagerly: integer and float literals are converted to uint64 and
float64, and escape sequences in strings, characters and byte strings are resolved.
A character or byte literal holds exactly one character or escape sequence; a stray
quote is an invalid token of its own. Strings and characters must be valid UTF-8.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The possum Authors

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'possum.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("possum.lexer")
}
