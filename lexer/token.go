package lexer

import (
	"fmt"
	"strconv"

	"github.com/raftario/possum"
)

// --- Scalar tokens ---------------------------------------------------------

// Scalar is the tag of a fixed-vocabulary token: punctuation, operators and keywords.
// Scalar tokens carry no payload besides their tag.
type Scalar int

// Scalar token tags. The zero value is not a valid tag.
const (
	NoScalar Scalar = iota

	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket

	Plus
	Minus
	Star
	Slash
	Modulo
	Bar
	Ampersand
	Hat
	Dot
	Comma
	Underscore
	Assign
	Bang
	Question
	Tilde
	Colon
	Semicolon

	Or
	And

	PlusAssign
	MinusAssign
	TimesAssign
	DivAssign
	ModuloAssign
	OrAssign
	AndAssign
	XorAssign

	Path
	Range

	Equal
	NotEqual
	GreaterEqual
	LessEqual
	Greater
	Less

	Let
	Const
	Global
	Fn
	Struct
	If
	Else
	Loop
	For
	In
	Mut
	Import
	Export
	Use
	Type
	Constraint
	Is
	Return
	Break
	Continue

	scalarCount // sentinel
)

var scalarNames = [...]string{
	NoScalar:     "NoScalar",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Modulo:       "Modulo",
	Bar:          "Bar",
	Ampersand:    "Ampersand",
	Hat:          "Hat",
	Dot:          "Dot",
	Comma:        "Comma",
	Underscore:   "Underscore",
	Assign:       "Assign",
	Bang:         "Bang",
	Question:     "Question",
	Tilde:        "Tilde",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Or:           "Or",
	And:          "And",
	PlusAssign:   "PlusAssign",
	MinusAssign:  "MinusAssign",
	TimesAssign:  "TimesAssign",
	DivAssign:    "DivAssign",
	ModuloAssign: "ModuloAssign",
	OrAssign:     "OrAssign",
	AndAssign:    "AndAssign",
	XorAssign:    "XorAssign",
	Path:         "Path",
	Range:        "Range",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	GreaterEqual: "GreaterEqual",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	Less:         "Less",
	Let:          "Let",
	Const:        "Const",
	Global:       "Global",
	Fn:           "Fn",
	Struct:       "Struct",
	If:           "If",
	Else:         "Else",
	Loop:         "Loop",
	For:          "For",
	In:           "In",
	Mut:          "Mut",
	Import:       "Import",
	Export:       "Export",
	Use:          "Use",
	Type:         "Type",
	Constraint:   "Constraint",
	Is:           "Is",
	Return:       "Return",
	Break:        "Break",
	Continue:     "Continue",
}

// The source text of every scalar token. Punctuation and operators are literals,
// keywords are set apart because they compete with identifiers.
var literals = map[Scalar]string{
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	LeftBracket:  "[",
	RightBracket: "]",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Modulo:       "%",
	Bar:          "|",
	Ampersand:    "&",
	Hat:          "^",
	Dot:          ".",
	Comma:        ",",
	Underscore:   "_",
	Assign:       "=",
	Bang:         "!",
	Question:     "?",
	Tilde:        "~",
	Colon:        ":",
	Semicolon:    ";",
	Or:           "||",
	And:          "&&",
	PlusAssign:   "+=",
	MinusAssign:  "-=",
	TimesAssign:  "*=",
	DivAssign:    "/=",
	ModuloAssign: "%=",
	OrAssign:     "|=",
	AndAssign:    "&=",
	XorAssign:    "^=",
	Path:         "::",
	Range:        "..",
	Equal:        "==",
	NotEqual:     "!=",
	GreaterEqual: ">=",
	LessEqual:    "<=",
	Greater:      ">",
	Less:         "<",
}

var keywords = map[Scalar]string{
	Let:        "let",
	Const:      "const",
	Global:     "global",
	Fn:         "fn",
	Struct:     "struct",
	If:         "if",
	Else:       "else",
	Loop:       "loop",
	For:        "for",
	In:         "in",
	Mut:        "mut",
	Import:     "import",
	Export:     "export",
	Use:        "use",
	Type:       "type",
	Constraint: "constraint",
	Is:         "is",
	Return:     "return",
	Break:      "break",
	Continue:   "continue",
}

func (s Scalar) String() string {
	if s < 0 || s >= scalarCount {
		return "Scalar(" + strconv.Itoa(int(s)) + ")"
	}
	return scalarNames[s]
}

// Text returns the source text of a scalar token, e.g. "==" for Equal.
func (s Scalar) Text() string {
	if t, ok := literals[s]; ok {
		return t
	}
	return keywords[s]
}

// IsKeyword is true for the reserved words of the language.
func (s Scalar) IsKeyword() bool {
	_, ok := keywords[s]
	return ok
}

// --- Literals --------------------------------------------------------------

// Literal is a decoded literal value. It is one of
//
//	Integer, Float, Bool, String, Char, ByteString, Byte
//
// Clients use a type switch to inspect literals.
type Literal interface {
	fmt.Stringer
	isLiteral()
}

// Integer is an unsigned integer literal, written in decimal, hex, octal or binary.
type Integer uint64

// Float is a floating point literal.
type Float float64

// Bool is one of the literals true and false.
type Bool bool

// String is a decoded double-quoted string literal.
type String string

// Char is a decoded single-quoted character literal.
type Char rune

// ByteString is a decoded byte string literal b"…".
type ByteString []byte

// Byte is a decoded byte literal b'…'.
type Byte byte

func (Integer) isLiteral()    {}
func (Float) isLiteral()      {}
func (Bool) isLiteral()       {}
func (String) isLiteral()     {}
func (Char) isLiteral()       {}
func (ByteString) isLiteral() {}
func (Byte) isLiteral()       {}

func (i Integer) String() string     { return strconv.FormatUint(uint64(i), 10) }
func (f Float) String() string       { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (b Bool) String() string        { return strconv.FormatBool(bool(b)) }
func (s String) String() string      { return strconv.Quote(string(s)) }
func (c Char) String() string        { return strconv.QuoteRune(rune(c)) }
func (bs ByteString) String() string { return "b" + strconv.Quote(string(bs)) }
func (b Byte) String() string        { return "b" + strconv.QuoteRune(rune(b)) }

// --- Tokens ----------------------------------------------------------------

// Class tells which of the three kinds of tokens a Token is.
type Class uint8

// Token classes.
const (
	ScalarClass Class = iota
	LiteralClass
	IdentifierClass
)

func (c Class) String() string {
	switch c {
	case ScalarClass:
		return "scalar"
	case LiteralClass:
		return "literal"
	case IdentifierClass:
		return "identifier"
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Token is a lexical unit. Depending on its class, exactly one of Scalar, Lit or Ident
// is meaningful:
//
//	ScalarClass      Scalar = Plus, Let, …
//	LiteralClass     Lit    = Integer(3), String("abc"), …
//	IdentifierClass  Ident  = "x"           // a substring of the source text
//
// Span locates the token within the source text.
type Token struct {
	Class  Class
	Scalar Scalar
	Lit    Literal
	Ident  string
	Span   possum.Span
}

// ScalarToken creates a token for a punctuation, operator or keyword.
func ScalarToken(s Scalar, span possum.Span) Token {
	return Token{Class: ScalarClass, Scalar: s, Span: span}
}

// LiteralToken creates a token for a decoded literal.
func LiteralToken(lit Literal, span possum.Span) Token {
	return Token{Class: LiteralClass, Lit: lit, Span: span}
}

// IdentToken creates a token for an identifier.
func IdentToken(name string, span possum.Span) Token {
	return Token{Class: IdentifierClass, Ident: name, Span: span}
}

// Is is true if t is the scalar token s.
func (t Token) Is(s Scalar) bool {
	return t.Class == ScalarClass && t.Scalar == s
}

// String renders a token the way listings print it, e.g.
//
//	Minus   IntegerLiteral(1)   Identifier("x")
func (t Token) String() string {
	switch t.Class {
	case ScalarClass:
		return t.Scalar.String()
	case LiteralClass:
		return literalName(t.Lit) + "(" + t.Lit.String() + ")"
	case IdentifierClass:
		return "Identifier(" + strconv.Quote(t.Ident) + ")"
	}
	return "<invalid token>"
}

func literalName(lit Literal) string {
	switch lit.(type) {
	case Integer:
		return "IntegerLiteral"
	case Float:
		return "FloatLiteral"
	case Bool:
		return "BoolLiteral"
	case String:
		return "StringLiteral"
	case Char:
		return "CharLiteral"
	case ByteString:
		return "ByteStringLiteral"
	case Byte:
		return "ByteLiteral"
	}
	return "Literal"
}
