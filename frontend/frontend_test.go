package frontend

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/raftario/possum"
	"github.com/raftario/possum/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	r := Run("-1 + 2 * (x - 3)")
	assert.False(t, r.HasErrors())
	assert.Len(t, r.Tokens, 10)
	assert.Equal(t, "(+ (- 1) (* 2 (block (- x 3))))", ast.String(r.Expr))
	assert.Empty(t, r.Diagnostics())
}

func TestDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	r := Run("1 + $ * (2")
	require.True(t, r.HasErrors())
	diags := r.Diagnostics()
	require.Len(t, diags, 3)
	assert.Equal(t, "L0001", diags[0].Code)
	assert.Equal(t, `invalid token "$"`, diags[0].Message)
	assert.Equal(t, possum.Position{Offset: 4, Line: 1, Column: 5}, diags[0].Position)
	assert.Equal(t, `1:5: error[L0001]: invalid token "$"`, diags[0].String())
	assert.Equal(t, "P0001", diags[1].Code)
	assert.Equal(t, possum.Span{6, 7}, diags[1].Span)
	assert.Equal(t, "P0003", diags[2].Code)
	assert.Equal(t, possum.Span{8, 10}, diags[2].Span)
	assert.Len(t, r.LexDiagnostics(), 1)
	//
	r = Run("1 +\n  \"\\q\" + (x")
	diags = r.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, "L0004", diags[0].Code)
	assert.Equal(t, 2, diags[0].Position.Line)
	assert.Equal(t, 3, diags[0].Position.Column)
	// the malformed string is missing from the token stream, leaving "1 + + (x"
	assert.Equal(t, "P0002", diags[1].Code)
	assert.Equal(t, possum.Position{Offset: 13, Line: 2, Column: 10}, diags[1].Position)
	assert.Equal(t, "(+ 1 (+ (block… x)))", ast.String(r.Expr))
	//
	data, err := json.Marshal(diags[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"error"`)
}

func TestFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	for name, format := range map[string]Format{"": JSON, "json": JSON, " YAML ": YAML, "SExpr": SExpr} {
		f, err := ParseFormat(name)
		assert.NoError(t, err)
		assert.Equal(t, format, f)
	}
	_, err := ParseFormat("xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	_, err = Encode(Run("1").Expr, Format("xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestNodeOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	n := NodeOf(Run(`!(x) == "s"`).Expr)
	require.NotNil(t, n)
	assert.Equal(t, "binary", n.Kind)
	assert.Equal(t, "==", n.Op)
	assert.Equal(t, possum.Span{0, 11}, n.Span)
	require.Len(t, n.Children, 2)
	unary := n.Children[0]
	assert.Equal(t, "unary", unary.Kind)
	assert.Equal(t, "!", unary.Op)
	require.Len(t, unary.Children, 1)
	block := unary.Children[0]
	assert.Equal(t, "block", block.Kind)
	assert.False(t, block.Unclosed)
	assert.Equal(t, &Node{Kind: "identifier", Value: "x", Span: possum.Span{2, 3}}, block.Children[0])
	assert.Equal(t, &Node{Kind: "literal", Value: `"s"`, Literal: "string", Span: possum.Span{8, 11}}, n.Children[1])
	//
	assert.Nil(t, NodeOf(nil))
	assert.Equal(t, "invalid", NodeOf(Run("}").Expr).Kind)
	assert.True(t, NodeOf(Run("(1").Expr).Unclosed)
}

func TestEncode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	expr := Run("1 + x").Expr
	out, err := Encode(expr, JSON)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "binary", decoded["kind"])
	assert.Equal(t, "+", decoded["op"])
	assert.Equal(t, []interface{}{0.0, 5.0}, decoded["span"])
	children := decoded["children"].([]interface{})
	require.Len(t, children, 2)
	assert.Equal(t, "integer", children[0].(map[string]interface{})["literal"])
	//
	out, err = Encode(expr, YAML)
	require.NoError(t, err)
	yml := string(out)
	assert.True(t, strings.HasPrefix(yml, "kind: binary"), yml)
	assert.Contains(t, yml, "kind: identifier")
	assert.Contains(t, yml, "literal: integer")
	assert.Contains(t, yml, "value: x")
	//
	out, err = Encode(expr, SExpr)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 x)", string(out))
}

func TestDigest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	d1, err := Digest(Run("1+2*x").Expr)
	require.NoError(t, err)
	d2, err := Digest(Run("  1 +  2 // comment\n * x").Expr)
	require.NoError(t, err)
	d3, err := Digest(Run("1*2+x").Expr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d1, "v1_"), d1)
	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3)
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "possum.frontend")
	defer teardown()
	//
	out, err := Compile("1 + 2", SExpr)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", string(out))
	out, err = Compile("1 + 2", "")
	require.NoError(t, err)
	assert.True(t, json.Valid(out))
	//
	_, err = Compile("1 $ 2 @", JSON)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, StageLexer, cerr.Stage)
	assert.Len(t, cerr.Diagnostics, 2)
	//
	_, err = Compile("1 +", JSON)
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, StageParser, cerr.Stage)
	require.Len(t, cerr.Diagnostics, 1)
	assert.Equal(t, "P0001", cerr.Diagnostics[0].Code)
	assert.Equal(t, "syntax analysis failed with 1 error(s)\n1:4: error[P0001]: expected an expression, found end of input", err.Error())
	//
	_, err = Compile("1", "xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
