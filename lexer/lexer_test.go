package lexer

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/raftario/possum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strip removes spans, for comparisons of token sequences modulo positions.
func strip(tokens []Token) []Token {
	r := make([]Token, len(tokens))
	for i, t := range tokens {
		t.Span = possum.Span{}
		r[i] = t
	}
	return r
}

func lexOK(t *testing.T, input string) []Token {
	t.Helper()
	tokens, errs := Tokenize(input)
	require.Empty(t, errs, "unexpected lexer errors for %q", input)
	return tokens
}

func lexErr(t *testing.T, input string) *Error {
	t.Helper()
	_, errs := Tokenize(input)
	require.Len(t, errs, 1, "expected exactly one lexer error for %q", input)
	return errs[0]
}

func TestScanExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	tokens := lexOK(t, "-1 + 2 * (x - 3)")
	expected := []Token{
		ScalarToken(Minus, possum.Span{0, 1}),
		LiteralToken(Integer(1), possum.Span{1, 2}),
		ScalarToken(Plus, possum.Span{3, 4}),
		LiteralToken(Integer(2), possum.Span{5, 6}),
		ScalarToken(Star, possum.Span{7, 8}),
		ScalarToken(LeftParen, possum.Span{9, 10}),
		IdentToken("x", possum.Span{10, 11}),
		ScalarToken(Minus, possum.Span{12, 13}),
		LiteralToken(Integer(3), possum.Span{14, 15}),
		ScalarToken(RightParen, possum.Span{15, 16}),
	}
	assert.Equal(t, expected, tokens)
	for _, token := range tokens {
		t.Logf(" %10s | %s", token.Span, token)
	}
}

func TestMaximalMunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	tokens := lexOK(t, "letter")
	require.Len(t, tokens, 1)
	assert.Equal(t, IdentToken("letter", possum.Span{0, 6}), tokens[0])
	//
	assert.Equal(t, []Token{ScalarToken(Let, possum.Span{0, 3})}, lexOK(t, "let"))
	assert.Equal(t, []Token{IdentToken("truely", possum.Span{0, 6})}, lexOK(t, "truely"))
	assert.Equal(t, []Token{IdentToken("_x1", possum.Span{0, 3})}, lexOK(t, "_x1"))
	assert.Equal(t, []Token{ScalarToken(Underscore, possum.Span{0, 1})}, lexOK(t, "_"))
	assert.Equal(t, []Token{IdentToken("b", possum.Span{0, 1})}, lexOK(t, "b"))
}

func TestKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	for s, kw := range keywords {
		tokens := lexOK(t, kw)
		require.Len(t, tokens, 1, kw)
		assert.True(t, tokens[0].Is(s), "%q should lex as %s, is %s", kw, s, tokens[0])
		assert.True(t, s.IsKeyword())
		assert.Equal(t, kw, s.Text())
	}
}

func TestOperatorPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	for s, lit := range literals {
		tokens := lexOK(t, lit)
		require.Len(t, tokens, 1, lit)
		assert.True(t, tokens[0].Is(s), "%q should lex as %s, is %s", lit, s, tokens[0])
	}
	assert.Equal(t, []Token{ScalarToken(Equal, possum.Span{0, 2})}, lexOK(t, "=="))
	assert.Equal(t, []Token{
		ScalarToken(Assign, possum.Span{0, 1}),
		ScalarToken(Assign, possum.Span{2, 3}),
	}, lexOK(t, "= ="))
	assert.Equal(t, strip([]Token{
		ScalarToken(Equal, possum.Span{}),
		ScalarToken(Assign, possum.Span{}),
	}), strip(lexOK(t, "===")))
	assert.Equal(t, strip([]Token{
		LiteralToken(Integer(1), possum.Span{}),
		ScalarToken(Range, possum.Span{}),
		LiteralToken(Integer(2), possum.Span{}),
	}), strip(lexOK(t, "1..2")))
	assert.Equal(t, strip([]Token{
		IdentToken("a", possum.Span{}),
		ScalarToken(Path, possum.Span{}),
		IdentToken("b", possum.Span{}),
		ScalarToken(PlusAssign, possum.Span{}),
		ScalarToken(Or, possum.Span{}),
		ScalarToken(Bar, possum.Span{}),
	}), strip(lexOK(t, "a::b+=|||")))
}

func TestWhitespaceAndComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	spaced := lexOK(t, "1   +// comment\n 2")
	dense := lexOK(t, "1+2")
	assert.Equal(t, strip(dense), strip(spaced))
	assert.Equal(t, possum.Span{17, 18}, spaced[2].Span)
	//
	assert.Empty(t, lexOK(t, " \t\r\n// only a comment"))
	assert.Empty(t, lexOK(t, ""))
	assert.Equal(t, []Token{ScalarToken(Slash, possum.Span{0, 1})}, lexOK(t, "/"))
}

func TestIntegerRadices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	values := []uint64{0, 1, 7, 42, 255, 1 << 32, 0xdeadbeef, 1<<64 - 1}
	prefixes := map[int]string{10: "", 16: "0x", 8: "0o", 2: "0b"}
	for _, n := range values {
		for radix, prefix := range prefixes {
			rendered := prefix + strconv.FormatUint(n, radix)
			tokens := lexOK(t, rendered)
			require.Len(t, tokens, 1, rendered)
			assert.Equal(t, Integer(n), tokens[0].Lit, rendered)
			upper := strings.ToUpper(rendered)
			tokens = lexOK(t, upper)
			require.Len(t, tokens, 1, upper)
			assert.Equal(t, Integer(n), tokens[0].Lit, upper)
		}
	}
	assert.Equal(t, Integer(1000000), lexOK(t, "1_000_000")[0].Lit)
	assert.Equal(t, Integer(0xffff), lexOK(t, "0xff_ff")[0].Lit)
	assert.Equal(t, Integer(5), lexOK(t, "0b1_0_1")[0].Lit)
	assert.Equal(t, Integer(8), lexOK(t, "0o1_0")[0].Lit)
}

func TestIntegerOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	for _, input := range []string{"18446744073709551616", "0x1_0000_0000_0000_0000", "0o2000000000000000000000"} {
		err := lexErr(t, input)
		assert.Equal(t, InvalidInteger, err.Kind, input)
		assert.Equal(t, possum.Span{0, len(input)}, err.Span)
		assert.True(t, errors.Is(err, strconv.ErrRange), "%q should wrap strconv.ErrRange", input)
		assert.True(t, errors.Is(err, &Error{Kind: InvalidInteger}))
	}
	assert.Equal(t, Integer(1<<64-1), lexOK(t, "0xFFFF_FFFF_FFFF_FFFF")[0].Lit)
}

func TestFloats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	assert.Equal(t, Float(3.25), lexOK(t, "3.25")[0].Lit)
	assert.Equal(t, Float(1000.5), lexOK(t, "1_000.5")[0].Lit)
	assert.Equal(t, Float(0.125), lexOK(t, "0.1_25")[0].Lit)
	// a dot without trailing digits is not part of a float
	assert.Equal(t, strip([]Token{
		LiteralToken(Integer(1), possum.Span{}),
		ScalarToken(Dot, possum.Span{}),
		IdentToken("x", possum.Span{}),
	}), strip(lexOK(t, "1.x")))
	err := lexErr(t, strings.Repeat("9", 400)+".0")
	assert.Equal(t, InvalidFloat, err.Kind)
}

func TestBooleans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	assert.Equal(t, strip([]Token{
		LiteralToken(Bool(true), possum.Span{}),
		ScalarToken(NotEqual, possum.Span{}),
		LiteralToken(Bool(false), possum.Span{}),
	}), strip(lexOK(t, "true != false")))
}

func TestInvalidTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	tokens, errs := Tokenize("1 $ 2 @@")
	assert.Equal(t, strip([]Token{
		LiteralToken(Integer(1), possum.Span{}),
		LiteralToken(Integer(2), possum.Span{}),
	}), strip(tokens))
	require.Len(t, errs, 3)
	assert.Equal(t, &Error{Kind: InvalidToken, Span: possum.Span{2, 3}}, errs[0])
	assert.Equal(t, possum.Span{6, 7}, errs[1].Span)
	assert.Equal(t, possum.Span{7, 8}, errs[2].Span)
	// a multi-byte character is reported once, spanning all of its bytes
	err := lexErr(t, "€")
	assert.Equal(t, possum.Span{0, 3}, err.Span)
	// unterminated strings fall apart into an invalid quote and the rest
	tokens, errs = Tokenize(`"abc`)
	require.Len(t, errs, 1)
	assert.Equal(t, possum.Span{0, 1}, errs[0].Span)
	assert.Equal(t, []Token{IdentToken("abc", possum.Span{1, 4})}, tokens)
}

func TestLexIsLazyAndRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	seq := Lex("a b c d")
	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
	first, errs1 := collect(seq)
	second, errs2 := collect(seq)
	assert.Len(t, first, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, errs1, errs2)
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	input := `let x = 0x1F + "s\n" // c
	  'c' $ b"\x00" 9999999999999999999999`
	t1, e1 := Tokenize(input)
	t2, e2 := Tokenize(input)
	assert.Equal(t, t1, t2)
	assert.Equal(t, e1, e2)
	assert.Len(t, e1, 2)
}

func TestSpansDoNotOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.lexer")
	defer teardown()
	//
	input := "fn add(a, b) { a+b } // done\n\"x\" 'y' b'z' 1.5"
	tokens := lexOK(t, input)
	last := 0
	for _, token := range tokens {
		assert.True(t, token.Span.From() >= last, "token %s overlaps predecessor", token)
		assert.False(t, token.Span.IsEmpty())
		last = token.Span.To()
	}
	assert.Equal(t, "add", tokens[1].Ident)
	assert.Equal(t, "add", tokens[1].Span.Text(input))
}

func collect(seq func(func(Token, error) bool)) ([]Token, []error) {
	var tokens []Token
	var errs []error
	for token, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, errs
}
