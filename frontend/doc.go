/*
Package frontend drives the lexer and the parser of possum for its front ends: the
command line tool, the REPL and the WebAssembly module.

Run lexes and parses a source text in one go and keeps every intermediate result,
together with timing information. Clients usually inspect the result's diagnostics,
which merge lexical and syntax errors into one list, ordered by source position and
annotated with line and column:

	result := frontend.Run("1 + $ * (2")
	for _, d := range result.Diagnostics() {
		fmt.Println(d)   // 1:5: error[L0001]: invalid token "$" …
	}

Compile is the entry point for hosts which want an encoded AST or nothing. ASTs
may be encoded as JSON, as YAML or as an s-expression.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The possum Authors

*/
package frontend

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'possum.frontend'.
func tracer() tracing.Trace {
	return tracing.Select("possum.frontend")
}
