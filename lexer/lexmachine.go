package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/raftario/possum"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// lmAdapter wraps a compiled lexmachine lexer.
type lmAdapter struct {
	Lexer *lexmachine.Lexer
}

// newLMAdapter creates a lexmachine adapter. It receives the scalar tokens
// representing literal strings ("(", "==", …) and the keywords ("let", …), which are
// added in tag order, followed by the rules added by init. Rules added earlier win
// if two rules match input of the same length.
//
// newLMAdapter will return an error if compiling the DFA failed.
func newLMAdapter(skip func(*lexmachine.Lexer), literals, keywords map[Scalar]string,
	init func(*lexmachine.Lexer)) (*lmAdapter, error) {
	//
	adapter := &lmAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	skip(adapter.Lexer)
	for s := NoScalar + 1; s < scalarCount; s++ {
		if lit, ok := literals[s]; ok {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			adapter.Lexer.Add([]byte(r), makeToken(int(s)))
		}
	}
	for s := NoScalar + 1; s < scalarCount; s++ {
		if kw, ok := keywords[s]; ok {
			adapter.Lexer.Add([]byte(kw), makeToken(int(s)))
		}
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// scanner creates a scanner for a given input.
func (lm *lmAdapter) scanner(input string) (*lmScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &lmScanner{}, err
	}
	return &lmScanner{scanner: s, source: input}, nil
}

// lmScanner runs the DFA over one input. It converts lexmachine matches into
// tokens, slicing identifiers out of the original source string.
type lmScanner struct {
	scanner *lexmachine.Scanner
	source  string
}

// nextToken returns the next token or lexical error. done is set at the end of input.
func (lms *lmScanner) nextToken() (token Token, err *Error, done bool) {
	tok, e, eof := lms.scanner.Next()
	if eof {
		return Token{}, nil, true
	}
	if e != nil {
		if ui, is := e.(*machines.UnconsumedInput); is {
			// skip a single character and report it
			from := ui.StartTC
			_, w := utf8.DecodeRuneInString(lms.source[from:])
			if w == 0 {
				w = 1
			}
			lms.scanner.TC = from + w
			tracer().Debugf("unmatched input at %d: %q", from, lms.source[from:from+w])
			return Token{}, &Error{Kind: InvalidToken, Span: possum.Span{from, from + w}}, false
		}
		tracer().Errorf("scanner error: %v", e)
		return Token{}, nil, true
	}
	m := tok.(*lexmachine.Token)
	span := possum.Span{m.TC, m.TC + len(m.Lexeme)}
	t, err := convert(m.Type, lms.source[span.From():span.To()], span)
	return t, err, false
}

// ---------------------------------------------------------------------------

// skipMatch is a pre-defined action which ignores the scanned match.
func skipMatch(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a lexmachine
// token. Conversion into a Token happens in lmScanner.nextToken.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, nil, m), nil
	}
}
