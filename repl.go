package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"go.creack.net/pcalc/eval"
	"go.creack.net/pcalc/parser"
	"go.creack.net/pcalc/value"
)

const (
	promptMain = "> "
	promptCont = ">>> "

	historyFile = ".pcalc_history"
)

// Meta-commands, intercepted before the parser sees the line.
const (
	cmdEnv      = ":env"
	cmdReset    = ":reset"
	cmdLast     = ":last"
	cmdBatch    = ":batch"
	cmdHelp     = ":help"
	cmdExamples = ":examples"
	cmdQuit     = ":quit"
)

type repl struct {
	out    io.Writer
	errOut io.Writer

	env    *eval.Environment
	parser *parser.Parser
	eval   *eval.Evaluator

	// batch suppresses the value echo, leaving only print/xprint output.
	batch bool
}

func newREPL(out, errOut io.Writer, batch bool) *repl {
	return &repl{
		out:    out,
		errOut: errOut,
		env:    eval.NewEnvironment(),
		parser: parser.New(),
		eval:   eval.New(out),
		batch:  batch,
	}
}

// evalLine runs one line through the parser and the evaluator. It
// returns false when the line failed.
func (r *repl) evalLine(line string) bool {
	node, err := r.parser.Parse(line)
	if err != nil {
		fmt.Fprintln(r.errOut, color.RedString("error: %s", err))
		return false
	}
	if node == nil {
		return true // Blank line or incomplete def waiting for more input.
	}
	v, err := r.eval.Eval(node, r.env)
	if err != nil {
		fmt.Fprintln(r.errOut, color.RedString("error: %s", err))
		return false
	}
	r.env.SetLast(v)
	if !r.batch {
		fmt.Fprintln(r.out, v)
	}
	return true
}

// loadFile evaluates a file line by line over the shared environment,
// stopping at the first failing line.
func (r *repl) loadFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if !r.evalLine(scanner.Text()) {
			return fmt.Errorf("line %d", lineno)
		}
	}
	return scanner.Err()
}

// run is the interactive loop.
func (r *repl) run() {
	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		prompt := promptMain
		if r.parser.Pending() {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // io.EOF or unusable terminal.
			fmt.Fprintln(r.out)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == cmdQuit {
			break
		}
		// A pending def owns every line until its 'end'.
		if strings.HasPrefix(line, ":") && !r.parser.Pending() {
			r.command(line)
			continue
		}
		r.evalLine(line)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
}

func (r *repl) command(line string) {
	switch line {
	case cmdEnv:
		r.showEnv()
	case cmdReset:
		r.env.Reset()
	case cmdLast:
		fmt.Fprintln(r.out, r.env.Last())
	case cmdBatch:
		r.batch = !r.batch
		state := "off"
		if r.batch {
			state = "on"
		}
		fmt.Fprintf(r.out, "batch mode %s\n", state)
	case cmdHelp:
		r.help()
	case cmdExamples:
		r.examples()
	default:
		fmt.Fprintf(r.out, "unknown command %q, try %s\n", line, cmdHelp)
	}
}

// showEnv renders the variable and function tables, names aligned.
func (r *repl) showEnv() {
	vars := r.env.Vars()
	names := make([]string, 0, len(vars))
	width := len("name")
	for name := range vars {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(r.out, "variables:")
	fmt.Fprintf(r.out, "  %-*s  value\n", width, "name")
	for _, name := range names {
		fmt.Fprintf(r.out, "  %-*s  %s\n", width, name, vars[name])
	}

	funcs := r.env.Funcs()
	fnames := make([]string, 0, len(funcs))
	for name := range funcs {
		fnames = append(fnames, name)
	}
	sort.Strings(fnames)

	fmt.Fprintln(r.out, "functions:")
	for _, name := range fnames {
		fmt.Fprintf(r.out, "  %s(%s)\n", name, strings.Join(funcs[name].Params, ", "))
	}
}

func (r *repl) banner() {
	_, _ = color.New(color.FgCyan).Fprintln(r.out, "pcalc - prefix notation calculator")
	fmt.Fprintf(r.out, "type %s for help, %s or ctrl-d to exit\n", cmdHelp, cmdQuit)
}

func (r *repl) help() {
	fmt.Fprintln(r.out, "statements:")
	fmt.Fprintln(r.out, "  var name expr                    define a variable")
	fmt.Fprintln(r.out, "  = name expr                      assign an existing variable")
	fmt.Fprintln(r.out, "  if cond ? expr [: expr] fi       conditional")
	fmt.Fprintln(r.out, "  def name params... begin stmts end")
	fmt.Fprintln(r.out, "  call name args... cend")
	fmt.Fprintln(r.out, "  print expr                       evaluate, print and return")
	fmt.Fprintln(r.out, "  stmt ; stmt                      sequence, left to right")
	fmt.Fprintln(r.out, "binary operators:")
	printList(r.out, value.BinaryOps())
	fmt.Fprintln(r.out, "unary operators:")
	printList(r.out, value.UnaryOps())
	fmt.Fprintln(r.out, "constants:")
	printList(r.out, value.ConstantNames())
	fmt.Fprintln(r.out, "commands:")
	fmt.Fprintf(r.out, "  %s\n", strings.Join([]string{
		cmdEnv, cmdReset, cmdLast, cmdBatch, cmdHelp, cmdExamples, cmdQuit,
	}, " "))
	fmt.Fprintln(r.out, "the value of the previous statement is available as 'last'")
}

func (r *repl) examples() {
	fmt.Fprintln(r.out, "> var x 5")
	fmt.Fprintln(r.out, "5")
	fmt.Fprintln(r.out, "> * 2 + x 20")
	fmt.Fprintln(r.out, "50")
	fmt.Fprintln(r.out, "> sqrt + ^ 3 2 ^ 4 2")
	fmt.Fprintln(r.out, "5")
	fmt.Fprintln(r.out, "> def f2c f begin / * - f 32 5 9 end")
	fmt.Fprintln(r.out, "true")
	fmt.Fprintln(r.out, "> call f2c 54 cend")
	fmt.Fprintln(r.out, "12.222222222222221")
	fmt.Fprintln(r.out, "> if > last 10 ? print 1 : print 0 fi")
	fmt.Fprintln(r.out, "1")
	fmt.Fprintln(r.out, "1")
}

// printList writes names in aligned columns, eight per row.
func printList(w io.Writer, names []string) {
	for i, name := range names {
		if i > 0 && i%8 == 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  %-6s", name)
	}
	fmt.Fprintln(w)
}
