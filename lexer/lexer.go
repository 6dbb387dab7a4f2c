package lexer

import (
	"fmt"
	"iter"
	"sync"

	"github.com/raftario/possum"
	"github.com/timtadh/lexmachine"
)

// Rule ids for lexemes which are not scalar tokens. Scalar tokens use their tag as id.
const (
	ruleInteger = 1000 + iota
	ruleHexInteger
	ruleOctInteger
	ruleBinInteger
	ruleFloat
	ruleTrue
	ruleFalse
	ruleString
	ruleChar
	ruleByteString
	ruleByte
	ruleIdentifier
)

func skipRules(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`( |\t|\n|\r)+`), skipMatch)
	lexer.Add([]byte(`//[^\n]*`), skipMatch) // comments
}

// The DFA works on bytes, so non-ASCII characters are spelled out as UTF-8 byte
// sequences.
const utf8Char = "[\xc2-\xdf][\x80-\xbf]|" +
	"[\xe0-\xef][\x80-\xbf][\x80-\xbf]|" +
	"[\xf0-\xf4][\x80-\xbf][\x80-\xbf][\x80-\xbf]"

// escape matches a backslash and whatever character follows it, including a line
// break. Validation is left to the literal decoders.
const escape = `\\([^\n]|\n|` + utf8Char + `)`

// charBody matches exactly one character or one escape sequence. Hex and Unicode
// escapes are matched loosely, for the decoders to report the offending text.
const charBody = `([^'\\\n]|` + utf8Char + `|` + escape +
	`|\\x[^'\\\n][^'\\\n]?|\\u[{}0-9A-Fa-f]*)`

// Generic rules are added after scalars and keywords, thus "let" will be a keyword,
// "letter" an identifier.
func genericRules(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`[0-9](_?[0-9])*`), makeToken(ruleInteger))
	lexer.Add([]byte(`0[Xx][0-9A-Fa-f](_?[0-9A-Fa-f])*`), makeToken(ruleHexInteger))
	lexer.Add([]byte(`0[Oo][0-7](_?[0-7])*`), makeToken(ruleOctInteger))
	lexer.Add([]byte(`0[Bb][01](_?[01])*`), makeToken(ruleBinInteger))
	lexer.Add([]byte(`[0-9](_?[0-9])*\.[0-9](_?[0-9])*`), makeToken(ruleFloat))
	lexer.Add([]byte(`true`), makeToken(ruleTrue))
	lexer.Add([]byte(`false`), makeToken(ruleFalse))
	lexer.Add([]byte(`"([^"\\]|`+escape+`)*\\?"`), makeToken(ruleString))
	lexer.Add([]byte(`'`+charBody+`'|'\\'`), makeToken(ruleChar))
	lexer.Add([]byte(`b"([^"\\]|`+escape+`)*\\?"`), makeToken(ruleByteString))
	lexer.Add([]byte(`b'`+charBody+`'|b'\\'`), makeToken(ruleByte))
	lexer.Add([]byte(`_*([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(ruleIdentifier))
}

var dfa *lmAdapter
var dfaOnce sync.Once // monitors one-time compilation of the DFA

func compiledLexer() *lmAdapter {
	dfaOnce.Do(func() {
		var err error
		tracer().Infof("Compiling lexer DFA")
		if dfa, err = newLMAdapter(skipRules, literals, keywords, genericRules); err != nil {
			panic(fmt.Errorf("cannot compile lexer DFA: %w", err))
		}
	})
	return dfa
}

// Lex tokenizes source and returns a lazy sequence of tokens. For every malformed
// lexeme the sequence yields a zero Token together with an *Error; scanning
// continues behind it. Whitespace and comments are skipped.
//
// The sequence covers the entire input. It is restartable only by ranging over it
// again, which re-scans source from the start.
func Lex(source string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		scan, err := compiledLexer().scanner(source)
		if err != nil {
			panic(fmt.Errorf("lexer not initialized: %w", err))
		}
		for {
			token, lexerr, done := scan.nextToken()
			if done {
				return
			}
			if lexerr != nil {
				if !yield(Token{}, lexerr) {
					return
				}
				continue
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

// Tokenize drains Lex, separating tokens from errors. The tokens are in input order
// and form a finalized slice suitable for parsing.
func Tokenize(source string) ([]Token, []*Error) {
	var tokens []Token
	var errs []*Error
	for token, err := range Lex(source) {
		if err != nil {
			errs = append(errs, err.(*Error))
			continue
		}
		tokens = append(tokens, token)
	}
	tracer().Debugf("tokenized %d bytes into %d tokens, %d errors", len(source), len(tokens), len(errs))
	return tokens, errs
}

// convert creates a token for a rule match, decoding literal values.
func convert(id int, text string, span possum.Span) (Token, *Error) {
	var lit Literal
	var err error
	kind := InvalidToken
	switch id {
	case ruleIdentifier:
		return IdentToken(text, span), nil
	case ruleTrue:
		return LiteralToken(Bool(true), span), nil
	case ruleFalse:
		return LiteralToken(Bool(false), span), nil
	case ruleInteger:
		lit, err = parseInteger(text, 10)
		kind = InvalidInteger
	case ruleHexInteger:
		lit, err = parseInteger(text, 16)
		kind = InvalidInteger
	case ruleOctInteger:
		lit, err = parseInteger(text, 8)
		kind = InvalidInteger
	case ruleBinInteger:
		lit, err = parseInteger(text, 2)
		kind = InvalidInteger
	case ruleFloat:
		lit, err = parseFloat(text)
		kind = InvalidFloat
	case ruleString:
		lit, err = decodeString(text[1 : len(text)-1])
	case ruleChar:
		lit, err = decodeChar(text[1 : len(text)-1])
	case ruleByteString:
		lit, err = decodeByteString(text[2 : len(text)-1])
	case ruleByte:
		lit, err = decodeByte(text[2 : len(text)-1])
	default:
		if id > int(NoScalar) && id < int(scalarCount) {
			return ScalarToken(Scalar(id), span), nil
		}
		tracer().Errorf("unknown lexer rule id %d", id)
		return Token{}, &Error{Kind: InvalidToken, Span: span}
	}
	if err != nil {
		return Token{}, errorAt(err, kind, span)
	}
	return LiteralToken(lit, span), nil
}
