package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/raftario/possum/frontend"
)

// ReplCmd starts an interactive session.
type ReplCmd struct{}

// Run executes the repl command.
func (cmd *ReplCmd) Run(ctx *Context) error {
	repl, err := readline.New(ctx.Config.Prompt)
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to possum") // colored welcome message
	tracer().Infof("Quit with :quit or <ctrl>D")
	intp := &Intp{config: ctx.Config, repl: repl}
	intp.REPL()
	return nil
}

// Intp is our interpreter object.
type Intp struct {
	config *Config
	repl   *readline.Instance
	last   *frontend.Result
}

// REPL reads expressions until the user quits.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval handles one line of input, which is either a command starting with ':' or an
// expression. It returns true if the user wants to quit.
func (intp *Intp) Eval(line string) bool {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line))
	}
	tracer().Infof("----------------------- Lex & Parse ------------------------------")
	intp.last = frontend.Run(line)
	report(intp.last, intp.config)
	if digest, err := frontend.Digest(intp.last.Expr); err == nil {
		pterm.Info.Println("digest " + digest)
	}
	return false
}

func (intp *Intp) command(args []string) bool {
	switch args[0] {
	case ":quit", ":q":
		return true
	case ":tokens":
		intp.config.ShowTokens = !intp.config.ShowTokens
		pterm.Info.Println(fmt.Sprintf("show tokens: %v", intp.config.ShowTokens))
	case ":timing":
		intp.config.ShowTiming = !intp.config.ShowTiming
		pterm.Info.Println(fmt.Sprintf("show timing: %v", intp.config.ShowTiming))
	case ":format":
		if len(args) != 2 {
			pterm.Error.Println("usage: :format json|yaml|sexpr")
			break
		}
		format, err := frontend.ParseFormat(args[1])
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		intp.config.Format = string(format)
	case ":encode":
		intp.encode()
	case ":help":
		pterm.Println(replHelp)
	default:
		pterm.Error.Println("unknown command " + args[0] + ", try :help")
	}
	return false
}

// encode prints the most recent expression in the configured format.
func (intp *Intp) encode() {
	if intp.last == nil || intp.last.Expr == nil {
		pterm.Error.Println("no expression to encode")
		return
	}
	out, err := frontend.Encode(intp.last.Expr, frontend.Format(intp.config.Format))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Println(string(out))
}

const replHelp = `Enter an expression to lex and parse it. Commands are
  :tokens          toggle token listings
  :timing          toggle timing information
  :format F        set the output format of :encode to json, yaml or sexpr
  :encode          print the last expression in the output format
  :quit            end the session (or <ctrl>D)`
