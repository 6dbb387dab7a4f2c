package lexer

import (
	"fmt"

	"github.com/raftario/possum"
)

// ErrorKind classifies lexical errors.
type ErrorKind int

// Kinds of lexical errors.
const (
	InvalidToken      ErrorKind = iota // no lexical rule matched
	InvalidInteger                     // integer literal overflows or is malformed for its radix
	InvalidFloat                       // float literal is malformed
	InvalidEscape                      // unknown or truncated escape sequence
	InvalidByteEscape                  // escape or character not allowed in a byte literal
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "invalid token"
	case InvalidInteger:
		return "invalid integer"
	case InvalidFloat:
		return "invalid float"
	case InvalidEscape:
		return "invalid escape sequence"
	case InvalidByteEscape:
		return "invalid byte escape"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a lexical error, located by its span. Lexing does not stop at errors:
// each malformed lexeme produces one Error and the scanner continues behind it.
type Error struct {
	Kind   ErrorKind
	Span   possum.Span
	Escape string // offending text of a literal's body, e.g. an escape sequence
	Err    error  // underlying conversion error, if any
}

func (e *Error) Error() string {
	switch {
	case e.Escape != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Escape)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

// Unwrap returns the underlying conversion error, e.g. a *strconv.NumError.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind, so clients may test with errors.Is(err, &Error{Kind: k}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// escapeError is produced by the literal decoders, which do not know about spans.
type escapeError struct {
	kind ErrorKind
	text string
}

func (e *escapeError) Error() string {
	return fmt.Sprintf("%s: %q", e.kind, e.text)
}

func errorAt(err error, kind ErrorKind, span possum.Span) *Error {
	if ee, ok := err.(*escapeError); ok {
		return &Error{Kind: ee.kind, Span: span, Escape: ee.text}
	}
	return &Error{Kind: kind, Span: span, Err: err}
}
