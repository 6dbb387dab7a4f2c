package ast

import (
	"github.com/raftario/possum"
	"github.com/raftario/possum/lexer"
)

// Tokens is a read cursor over a finalized slice of tokens. It is a small value type:
// reading a token does not change the cursor, but returns an advanced copy of it.
// Parse functions receive a cursor and return the cursor positioned behind the input
// they consumed, so the position only ever moves forward.
//
// The underlying slice is borrowed and never modified.
type Tokens struct {
	tokens []lexer.Token
	pos    int
}

// NewTokens creates a cursor positioned at the first token.
func NewTokens(tokens []lexer.Token) Tokens {
	return Tokens{tokens: tokens}
}

// Peek returns the token at the cursor position. It returns false if the cursor is
// exhausted.
func (ts Tokens) Peek() (lexer.Token, bool) {
	if ts.pos >= len(ts.tokens) {
		return lexer.Token{}, false
	}
	return ts.tokens[ts.pos], true
}

// Next returns the token at the cursor position and a cursor advanced by one token.
// An exhausted cursor returns itself and false.
func (ts Tokens) Next() (lexer.Token, Tokens, bool) {
	t, ok := ts.Peek()
	if !ok {
		return t, ts, false
	}
	ts.pos++
	return t, ts, true
}

// Pos is the number of tokens consumed so far.
func (ts Tokens) Pos() int {
	return ts.pos
}

// Len is the number of tokens not yet consumed.
func (ts Tokens) Len() int {
	return len(ts.tokens) - ts.pos
}

// Exhausted is true if all tokens have been consumed.
func (ts Tokens) Exhausted() bool {
	return ts.pos >= len(ts.tokens)
}

// Rest returns the tokens not yet consumed.
func (ts Tokens) Rest() []lexer.Token {
	if ts.Exhausted() {
		return nil
	}
	return ts.tokens[ts.pos:]
}

// end is the source position behind the last token, where missing input is located.
func (ts Tokens) end() possum.Span {
	if len(ts.tokens) == 0 {
		return possum.Span{}
	}
	to := ts.tokens[len(ts.tokens)-1].Span.To()
	return possum.MakeSpan(to, to)
}
