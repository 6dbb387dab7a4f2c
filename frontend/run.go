package frontend

import (
	"time"

	"github.com/raftario/possum"
	"github.com/raftario/possum/ast"
	"github.com/raftario/possum/lexer"
)

// Result holds everything produced by one run of the front end over a source text.
type Result struct {
	Source      string
	Tokens      []lexer.Token
	LexErrors   []*lexer.Error
	Expr        ast.Expr
	ParseErrors []*ast.ParseError
	LexTime     time.Duration
	ParseTime   time.Duration
	lines       *possum.LineIndex
}

// Run lexes and parses source. Tokens are parsed even if lexical errors occurred,
// skipping the malformed lexemes.
func Run(source string) *Result {
	r := &Result{Source: source}
	start := time.Now()
	r.Tokens, r.LexErrors = lexer.Tokenize(source)
	r.LexTime = time.Since(start)
	tracer().Debugf("lexed %d tokens in %s with %d errors", len(r.Tokens), r.LexTime, len(r.LexErrors))
	//
	start = time.Now()
	r.Expr, r.ParseErrors = ast.Parse(ast.NewTokens(r.Tokens))
	r.ParseTime = time.Since(start)
	tracer().Debugf("parsed AST in %s with %d errors", r.ParseTime, len(r.ParseErrors))
	return r
}

// HasErrors is true if lexing or parsing reported any error.
func (r *Result) HasErrors() bool {
	return len(r.LexErrors) > 0 || len(r.ParseErrors) > 0
}

// Lines returns a line index for the source text, created on first use.
func (r *Result) Lines() *possum.LineIndex {
	if r.lines == nil {
		r.lines = possum.NewLineIndex(r.Source)
	}
	return r.lines
}
