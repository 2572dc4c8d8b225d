// Released under an MIT license. See LICENSE.

// Package options parses knight's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const usage = `knight

Usage:
  knight [-cdn] -e EXPR
  knight [-cdn] [-w] -f FILE
  knight [-cdin] [-s]
  knight -l
  knight -h
  knight -v

Options:
  -c, --checked      Report integer overflow instead of wrapping.
  -d, --debug        Log diagnostics.
  -e, --expr=EXPR    Run the specified expression.
  -f, --file=FILE    Run the program in FILE.
  -i, --interactive  Invert interactive mode.
  -l, --list         List builtin functions.
  -n, --embedded     Disable the shell function.
  -s, --stdin        Read the program from stdin.
  -w, --watch        Run FILE again whenever it changes.
  -h, --help         Display this help.
  -v, --version      Print knight version.

If knight's stdin is a TTY, and knight was invoked without an expression,
file or -s, interactive mode is enabled. Otherwise, it is disabled.
`

// T holds parsed command line options.
type T struct {
	Checked     bool
	Debug       bool
	Embedded    bool
	Expr        string
	File        string
	HasExpr     bool
	HasFile     bool
	Interactive bool
	List        bool
	Stdin       bool
	Watch       bool
}

// Parse parses argv. Help is called with the text to display when the
// user asks for help or the version, or when argv does not match the usage.
// A nil help exits after printing. If help returns, Parse returns a nil *T.
func Parse(argv []string, version string, help func(err error, usage string)) (*T, error) {
	if help == nil {
		help = docopt.PrintHelpAndExit
	}

	p := &docopt.Parser{HelpHandler: help}

	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil || opts == nil {
		return nil, err
	}

	t := &T{}

	// An empty expression or file name is still given.
	t.Expr, err = opts.String("--expr")
	t.HasExpr = err == nil
	t.File, err = opts.String("--file")
	t.HasFile = err == nil

	t.Checked, _ = opts.Bool("--checked")
	t.Debug, _ = opts.Bool("--debug")
	t.Embedded, _ = opts.Bool("--embedded")
	t.List, _ = opts.Bool("--list")
	t.Stdin, _ = opts.Bool("--stdin")
	t.Watch, _ = opts.Bool("--watch")

	if !t.HasExpr && !t.HasFile && !t.Stdin && !t.List {
		t.Interactive = terminal()
	}

	invertInteractive, _ := opts.Bool("--interactive")
	t.Interactive = t.Interactive != invertInteractive

	return t, nil
}

// Usage returns the usage text.
func Usage() string {
	return usage
}

func terminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
