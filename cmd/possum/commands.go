package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/raftario/possum/frontend"
)

// RunCmd lexes and parses a file and reports the results.
type RunCmd struct {
	File string `arg:"" help:"Source file, - for stdin"`
}

// Run executes the run command.
func (cmd *RunCmd) Run(ctx *Context) error {
	source, err := readSource(cmd.File)
	if err != nil {
		return err
	}
	r := frontend.Run(source)
	report(r, ctx.Config)
	if r.HasErrors() {
		return errSourceHasErrors
	}
	return nil
}

// LexCmd lists the tokens of a file.
type LexCmd struct {
	File string `arg:"" help:"Source file, - for stdin"`
}

// Run executes the lex command. Token listings are printed even if the configuration
// switches them off for other commands.
func (cmd *LexCmd) Run(ctx *Context) error {
	source, err := readSource(cmd.File)
	if err != nil {
		return err
	}
	r := frontend.Run(source)
	printTokens(r)
	printDiagnostics(r, r.LexDiagnostics())
	if len(r.LexErrors) > 0 {
		return errSourceHasErrors
	}
	return nil
}

// CompileCmd prints the AST of a file.
type CompileCmd struct {
	File   string `arg:"" help:"Source file, - for stdin"`
	Format string `help:"Output format [json|yaml|sexpr], defaults to the configured format" short:"f"`
}

// Run executes the compile command.
func (cmd *CompileCmd) Run(ctx *Context) error {
	source, err := readSource(cmd.File)
	if err != nil {
		return err
	}
	format := cmd.Format
	if format == "" {
		format = ctx.Config.Format
	}
	out, err := frontend.Compile(source, frontend.Format(format))
	var cerr *frontend.CompileError
	if errors.As(err, &cerr) {
		printDiagnostics(frontend.Run(source), cerr.Diagnostics)
		return errSourceHasErrors
	} else if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readSource(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read source: %w", err)
	}
	tracer().Debugf("read %d bytes of source from %s", len(data), path)
	return string(data), nil
}
