package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/raftario/possum/ast"
	"github.com/raftario/possum/frontend"
	"github.com/raftario/possum/lexer"
)

// report prints the outcome of a front end run: timing, tokens, diagnostics and the
// expression tree.
func report(r *frontend.Result, config *Config) {
	if config.ShowTiming {
		pterm.Info.Println(fmt.Sprintf("Lexed %d tokens in %d µs with %d errors",
			len(r.Tokens), r.LexTime.Microseconds(), len(r.LexErrors)))
		pterm.Info.Println(fmt.Sprintf("Parsed %d tokens in %d µs with %d errors",
			len(r.Tokens), r.ParseTime.Microseconds(), len(r.ParseErrors)))
	}
	if config.ShowTokens {
		printTokens(r)
	}
	printDiagnostics(r, r.Diagnostics())
	if r.Expr != nil {
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(leveledTree(r.Expr))).Render()
	}
}

func printTokens(r *frontend.Result) {
	for _, line := range tokenListing(r.Source, r.Tokens) {
		pterm.Println(line)
	}
}

func printDiagnostics(r *frontend.Result, diags []frontend.Diagnostic) {
	for _, d := range diags {
		pterm.Error.Println(d.String())
		line := r.Lines().Line(d.Position.Line)
		pterm.Println("    " + line)
		pterm.Println("    " + caret(line, d))
	}
}

// tokenListing renders one line per token, like
//
//	[4..5]  "+"  Plus
func tokenListing(source string, tokens []lexer.Token) []string {
	listing := make([]string, len(tokens))
	for i, t := range tokens {
		listing[i] = fmt.Sprintf("[%d..%d]\t%q\t%s", t.Span.From(), t.Span.To(),
			t.Span.Text(source), t)
	}
	return listing
}

// caret underlines the part of line a diagnostic refers to. Spans reaching beyond the
// line are cut off; empty spans get a single caret.
func caret(line string, d frontend.Diagnostic) string {
	col := d.Position.Column - 1
	n := utf8.RuneCountInString(line)
	if col > n {
		col = n
	}
	width := 1
	if d.Span.Len() > 0 {
		start := len(string([]rune(line)[:col]))
		end := start + d.Span.Len()
		if end > len(line) {
			end = len(line)
		}
		if w := utf8.RuneCountInString(line[start:end]); w > 1 {
			width = w
		}
	}
	return strings.Repeat(" ", col) + strings.Repeat("^", width)
}

// leveledTree flattens an expression tree into a list of indented labels, as needed
// for pterm tree output.
func leveledTree(expr ast.Expr) pterm.LeveledList {
	lt := &leveler{}
	ast.Walk(lt, expr)
	return lt.ll
}

type leveler struct {
	ll pterm.LeveledList
}

func (lt *leveler) Enter(expr ast.Expr, level int) bool {
	lt.ll = append(lt.ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(expr),
	})
	return true
}

func (lt *leveler) Exit(ast.Expr, int) {}

func nodeLabel(expr ast.Expr) string {
	var label string
	switch e := expr.(type) {
	case *ast.Binary:
		label = "Binary " + e.Op.String()
	case *ast.Unary:
		label = "Unary " + e.Op.String()
	case *ast.Literal:
		label = "Literal " + e.Value.String()
	case *ast.Identifier:
		label = "Identifier " + e.Name
	case *ast.Block:
		label = "Block"
		if !e.IsClosed() {
			label = "Block (unclosed)"
		}
	case *ast.Invalid:
		label = "Invalid"
	default:
		label = fmt.Sprintf("%T", expr)
	}
	return label + " " + expr.Span().String()
}
