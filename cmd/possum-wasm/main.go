//go:build js && wasm

// Command possum-wasm exposes the possum front end to JavaScript.
//
// It registers a global function
//
//	possumCompile(source[, format])
//
// returning {success: true, output: "..."} with the AST encoded as json (default),
// yaml or sexpr, or {success: false, error: "...", diagnostics: [...]}.
package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/raftario/possum/frontend"
)

func possumCompileJS(this js.Value, args []js.Value) (result interface{}) {
	defer func() {
		if r := recover(); r != nil {
			js.Global().Get("console").Call("error", "PANIC in possum compiler:", fmt.Sprint(r))
			result = map[string]interface{}{
				"success": false,
				"error":   fmt.Sprintf("internal error: %v", r),
			}
		}
	}()
	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (source string)",
		}
	}
	source := args[0].String()
	format := frontend.JSON
	if len(args) > 1 && args[1].Type() == js.TypeString {
		format = frontend.Format(args[1].String())
	}
	out, err := frontend.Compile(source, format)
	if err != nil {
		failure := map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}
		var cerr *frontend.CompileError
		if errors.As(err, &cerr) {
			failure["diagnostics"] = jsDiagnostics(cerr.Diagnostics)
		}
		return failure
	}
	return map[string]interface{}{
		"success": true,
		"output":  string(out),
	}
}

// jsDiagnostics converts diagnostics to values js.ValueOf accepts.
func jsDiagnostics(diags []frontend.Diagnostic) []interface{} {
	list := make([]interface{}, len(diags))
	for i, d := range diags {
		list[i] = map[string]interface{}{
			"severity": d.Severity.String(),
			"code":     d.Code,
			"message":  d.Message,
			"from":     d.Span.From(),
			"to":       d.Span.To(),
			"line":     d.Position.Line,
			"column":   d.Position.Column,
		}
	}
	return list
}

func main() {
	c := make(chan struct{})
	js.Global().Set("possumCompile", js.FuncOf(possumCompileJS))
	js.Global().Set("possumWasmVersion", "v0.1.0")
	fmt.Println("possum wasm front end ready")
	<-c
}
