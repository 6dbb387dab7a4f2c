package frontend

import (
	"fmt"
	"strings"
)

// CompileError is returned by Compile if the source text is malformed. Stage tells
// which step of the front end failed.
type CompileError struct {
	Stage       string
	Diagnostics []Diagnostic
}

// Compile stages.
const (
	StageLexer  = "lexical analysis"
	StageParser = "syntax analysis"
)

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed with %d error(s)", e.Stage, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		b.WriteString("\n")
		b.WriteString(d.String())
	}
	return b.String()
}

// Compile translates a source text into an encoded AST. It fails if there are
// lexical errors, reporting all of them; otherwise it fails if there are syntax
// errors, again reporting all of them.
func Compile(source string, format Format) ([]byte, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	r := Run(source)
	if len(r.LexErrors) > 0 {
		return nil, &CompileError{Stage: StageLexer, Diagnostics: r.LexDiagnostics()}
	}
	if len(r.ParseErrors) > 0 {
		return nil, &CompileError{Stage: StageParser, Diagnostics: r.Diagnostics()}
	}
	out, err := Encode(r.Expr, format)
	if err != nil {
		return nil, fmt.Errorf("cannot encode AST: %w", err)
	}
	tracer().Debugf("compiled %d bytes of source into %d bytes of %s", len(source), len(out), format)
	return out, nil
}
