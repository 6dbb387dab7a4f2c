package frontend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/goccy/go-yaml"
	"github.com/raftario/possum"
	"github.com/raftario/possum/ast"
	"github.com/raftario/possum/lexer"
)

// Format is an output format for ASTs.
type Format string

// Supported formats.
const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	SExpr Format = "sexpr"
)

// ErrUnknownFormat is returned for format names other than json, yaml and sexpr.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat checks a format name, ignoring case. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return JSON, nil
	case JSON, YAML, SExpr:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// --- Nodes -----------------------------------------------------------------

// Node is a plain data version of an expression node, suitable for encoders.
//
//	Kind      binary, unary, literal, identifier, block or invalid
//	Op        operator text, for binary and unary
//	Value     literal value as written in Go syntax, or identifier name
//	Literal   literal type: integer, float, bool, string, char, bytestring, byte
//	Unclosed  true for blocks missing their closing parenthesis
//
// Spans do not participate in digests.
type Node struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Op       string      `json:"op,omitempty" yaml:"op,omitempty"`
	Value    string      `json:"value,omitempty" yaml:"value,omitempty"`
	Literal  string      `json:"literal,omitempty" yaml:"literal,omitempty"`
	Unclosed bool        `json:"unclosed,omitempty" yaml:"unclosed,omitempty"`
	Span     possum.Span `json:"span" yaml:"span,flow" hash:"-"`
	Children []*Node     `json:"children,omitempty" yaml:"children,omitempty"`
}

// NodeOf converts an expression tree into a tree of nodes. A nil expression yields
// a nil node.
func NodeOf(expr ast.Expr) *Node {
	b := &nodeBuilder{}
	ast.Walk(b, expr)
	return b.root
}

// nodeBuilder is an ast.Listener which builds nodes top-down.
type nodeBuilder struct {
	root  *Node
	stack []*Node
}

func (b *nodeBuilder) Enter(expr ast.Expr, level int) bool {
	n := &Node{Span: expr.Span()}
	switch e := expr.(type) {
	case *ast.Binary:
		n.Kind, n.Op = "binary", e.Op.String()
	case *ast.Unary:
		n.Kind, n.Op = "unary", e.Op.String()
	case *ast.Literal:
		n.Kind, n.Value, n.Literal = "literal", e.Value.String(), literalType(e.Value)
	case *ast.Identifier:
		n.Kind, n.Value = "identifier", e.Name
	case *ast.Block:
		n.Kind, n.Unclosed = "block", !e.IsClosed()
	case *ast.Invalid:
		n.Kind = "invalid"
	default:
		tracer().Errorf("unknown expression type %T", expr)
		n.Kind = "unknown"
	}
	if len(b.stack) == 0 {
		b.root = n
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	b.stack = append(b.stack, n)
	return true
}

func (b *nodeBuilder) Exit(expr ast.Expr, level int) {
	b.stack = b.stack[:len(b.stack)-1]
}

func literalType(lit lexer.Literal) string {
	switch lit.(type) {
	case lexer.Integer:
		return "integer"
	case lexer.Float:
		return "float"
	case lexer.Bool:
		return "bool"
	case lexer.String:
		return "string"
	case lexer.Char:
		return "char"
	case lexer.ByteString:
		return "bytestring"
	case lexer.Byte:
		return "byte"
	}
	return "unknown"
}

// --- Encoding --------------------------------------------------------------

// Encode serializes an expression tree in the given format.
func Encode(expr ast.Expr, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return json.MarshalIndent(NodeOf(expr), "", "  ")
	case YAML:
		return yaml.Marshal(NodeOf(expr))
	case SExpr:
		return []byte(ast.String(expr)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Digest returns a fingerprint of the structure of an expression tree. Trees which
// differ only in the positions of their nodes, i.e. in whitespace and comments of
// the source text, have the same digest.
func Digest(expr ast.Expr) (string, error) {
	return structhash.Hash(NodeOf(expr), 1)
}
