/*
Command possum is the command line front end of the possum expression language.

Without a command, possum starts an interactive session (REPL), where users enter
expressions line by line. For every line, possum prints the tokens found, all lexical
and syntax errors, and the expression tree. The session ends with :quit or <ctrl>D.

Commands working on files are

	possum run FILE                 lex and parse FILE and report like the REPL does
	possum lex FILE                 list the tokens of FILE
	possum compile FILE -f yaml     print the AST of FILE as json, yaml or sexpr

FILE may be "-" for standard input. run, lex and compile exit with status 1 if the
source text contains errors.

Configuration

possum reads its configuration from possum.yaml in the current directory, if present
(see flag --config). A .env file is loaded first, and ${VAR} references in
configuration values are replaced by environment variables:

	trace: Error           # trace level: Debug, Info or Error
	prompt: "possum> "
	show_tokens: true      # print token listings
	show_timing: true      # print timing information
	format: json           # default output format of compile and :encode

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The possum Authors

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'possum.cli'.
func tracer() tracing.Trace {
	return tracing.Select("possum.cli")
}
