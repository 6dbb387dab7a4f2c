package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// errSourceHasErrors signals that a command ran, but the source text it worked on
// contained errors. They have already been reported.
var errSourceHasErrors = errors.New("source text contains errors")

// Context is handed to every command.
type Context struct {
	Config *Config
}

// CLI represents the command line interface.
var CLI struct {
	Config  string     `help:"Configuration file path" default:"possum.yaml"`
	Env     string     `help:"Environment file path" default:".env"`
	Trace   string     `help:"Trace level [Debug|Info|Error], overrides the configuration" short:"t"`
	Repl    ReplCmd    `cmd:"" default:"1" help:"Start an interactive session (default)"`
	Run     RunCmd     `cmd:"" help:"Lex and parse a file and report the results"`
	Lex     LexCmd     `cmd:"" help:"List the tokens of a file"`
	Compile CompileCmd `cmd:"" help:"Print the AST of a file in an output format"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

func main() {
	initDisplay()
	ctx := kong.Parse(&CLI,
		kong.Name("possum"),
		kong.Description("Lexer and parser front end for possum expressions"),
		kong.UsageOnError(),
	)
	config, err := LoadConfig(CLI.Config, CLI.Env)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if CLI.Trace != "" {
		config.Trace = CLI.Trace
	}
	initTracing(config.Trace)
	tracer().Infof("Trace level is %s", config.Trace)
	//
	err = ctx.Run(&Context{Config: config})
	if errors.Is(err, errSourceHasErrors) {
		os.Exit(1)
	} else if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracing through one Go logger.
func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.SyntaxTracer
	}))
}

// VersionCmd represents the version command.
type VersionCmd struct{}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println("possum v0.1.0")
	return nil
}
