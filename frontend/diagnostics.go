package frontend

import (
	"fmt"
	"sort"

	"github.com/raftario/possum"
	"github.com/raftario/possum/ast"
	"github.com/raftario/possum/lexer"
)

// Severity of a diagnostic. The front end currently reports errors only.
type Severity int

// Severities
const (
	SeverityError Severity = iota
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MarshalText lets encoders write severities by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a located message about the source text, ready to be shown to users.
type Diagnostic struct {
	Severity Severity        `json:"severity" yaml:"severity"`
	Code     string          `json:"code" yaml:"code"`
	Message  string          `json:"message" yaml:"message"`
	Span     possum.Span     `json:"span" yaml:"span"`
	Position possum.Position `json:"position" yaml:"position"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s[%s]: %s", d.Position, d.Severity, d.Code, d.Message)
}

// Diagnostic codes. Lexical errors start with L, syntax errors with P.
var lexCodes = map[lexer.ErrorKind]string{
	lexer.InvalidToken:      "L0001",
	lexer.InvalidInteger:    "L0002",
	lexer.InvalidFloat:      "L0003",
	lexer.InvalidEscape:     "L0004",
	lexer.InvalidByteEscape: "L0005",
}

var parseCodes = map[ast.ErrorKind]string{
	ast.ExpectedExpression: "P0001",
	ast.UnclosedBlock:      "P0002",
	ast.TrailingInput:      "P0003",
}

// Diagnostics returns all lexical and syntax errors of a run, ordered by position.
func (r *Result) Diagnostics() []Diagnostic {
	return r.collect(true, true)
}

// LexDiagnostics returns the lexical errors of a run only.
func (r *Result) LexDiagnostics() []Diagnostic {
	return r.collect(true, false)
}

func (r *Result) collect(lexical, syntactic bool) []Diagnostic {
	diags := make([]Diagnostic, 0, len(r.LexErrors)+len(r.ParseErrors))
	if lexical {
		for _, e := range r.LexErrors {
			diags = append(diags, r.lexDiagnostic(e))
		}
	}
	if syntactic {
		for _, e := range r.ParseErrors {
			diags = append(diags, r.diagnostic(parseCodes[e.Kind], e.Error(), e.Span))
		}
	}
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Span.From() < diags[j].Span.From()
	})
	return diags
}

func (r *Result) lexDiagnostic(e *lexer.Error) Diagnostic {
	msg := e.Error()
	if e.Kind == lexer.InvalidToken || e.Kind == lexer.InvalidInteger {
		msg = fmt.Sprintf("%s %q", e.Kind, e.Span.Text(r.Source))
	}
	return r.diagnostic(lexCodes[e.Kind], msg, e.Span)
}

func (r *Result) diagnostic(code, msg string, span possum.Span) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  msg,
		Span:     span,
		Position: r.Lines().Position(span.From()),
	}
}
