package ast

import (
	"fmt"

	"github.com/raftario/possum"
	"github.com/raftario/possum/lexer"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

// Kinds of syntax errors.
const (
	ExpectedExpression ErrorKind = iota // no primary production matched
	UnclosedBlock                       // "(" without matching ")"
	TrailingInput                       // tokens behind a complete expression
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedExpression:
		return "expected an expression"
	case UnclosedBlock:
		return "unclosed parenthesis"
	case TrailingInput:
		return "unexpected input after expression"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is a syntax error. Span locates the error; Token is the offending token,
// if there is one (there is none at the end of input).
type ParseError struct {
	Kind  ErrorKind
	Span  possum.Span
	Token *lexer.Token
}

func (e *ParseError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("%s, found %s", e.Kind, e.Token)
	}
	if e.Kind == ExpectedExpression {
		return fmt.Sprintf("%s, found end of input", e.Kind)
	}
	return e.Kind.String()
}

// Is matches errors of the same kind, so clients may test with
// errors.Is(err, &ParseError{Kind: k}).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, span possum.Span, token *lexer.Token) *ParseError {
	return &ParseError{Kind: kind, Span: span, Token: token}
}
