// Released under an MIT license. See LICENSE.

/*
Knight runs programs written in the Knight programming language.

A program is a single expression. Functions are named by a single
character, or a word whose first letter is the name, and take a fixed
number of arguments:

    ; = n 10
    : W > n 0
      ; OUTPUT n
      : = n - n 1

Knight can run an expression given on the command line, a program in a
file (optionally rerunning it whenever the file changes), a program read
from stdin, or an interactive session when stdin is a terminal.
*/
package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/engine/commands"
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/literal"
	"github.com/michaelmacinnis/knight/internal/reader/parser"
	"github.com/michaelmacinnis/knight/internal/system/options"
	"github.com/michaelmacinnis/knight/internal/system/watch"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/function"
	"github.com/michaelmacinnis/knight/internal/type/variable"
	"github.com/michaelmacinnis/knight/internal/ui"
)

const version = "knight 0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(argv []string, stdin io.Reader, stdout io.Writer) int {
	opts, err := options.Parse(argv, version, nil)
	if err != nil {
		println(err.Error())
		return 1
	} else if opts == nil {
		return 0
	}

	if opts.List {
		if err := commands.Describe(stdout); err != nil {
			println(err.Error())
			return 1
		}

		return 0
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fns := commands.Table()

	fresh := func() *env.T {
		o := []env.Option{
			env.Checked(opts.Checked),
			env.Input(stdin),
			env.Logger(log),
			env.Output(bufio.NewWriter(stdout)),
		}

		if opts.Embedded {
			o = append(o, env.Embedded())
		}

		return env.Default(o...)
	}

	switch {
	case opts.HasExpr:
		code, _ := program("-e", opts.Expr, fresh(), fns)
		return code

	case opts.HasFile && opts.Watch:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		status := 0

		err := watch.Run(ctx, opts.File, log, func(src string) bool {
			code, quit := program(opts.File, src, fresh(), fns)
			status = code

			return quit
		})
		if err != nil && ctx.Err() == nil {
			println("knight: " + err.Error())
			return 1
		}

		return status

	case opts.HasFile:
		b, err := os.ReadFile(opts.File)
		if err != nil {
			println("knight: " + err.Error())
			return 1
		}

		code, _ := program(opts.File, string(b), fresh(), fns)

		return code

	case opts.Interactive:
		return ui.Run(fresh(), fns)
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		println("knight: " + err.Error())
		return 1
	}

	code, _ := program("stdin", string(b), fresh(), fns)

	return code
}

// program parses and runs src. It returns the exit status and whether
// QUIT was called.
func program(label, src string, e *env.T, fns *function.Table) (int, bool) {
	c, err := parser.String(label, src, e, fns)
	if err == nil {
		_, err = engine.Run(c, e)
	}

	if ferr := e.Flush(); ferr != nil && err == nil {
		err = ferr
	}

	trace(e)

	if code, ok := failure.IsQuit(err); ok {
		return code, true
	} else if err != nil {
		println("knight: " + err.Error())
		return 1, false
	}

	return 0, false
}

// trace logs the final value of each assigned variable.
func trace(e *env.T) {
	log := e.Log()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	e.Each(func(v *variable.T) bool {
		if c := v.Get(); c != nil {
			log.Debug("variable", slog.String("name", v.Ident()), slog.String("value", literal.String(c)))
		}

		return true
	})
}
