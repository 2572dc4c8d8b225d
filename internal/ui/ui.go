// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for knight.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/interface/literal"
	"github.com/michaelmacinnis/knight/internal/reader/parser"
	"github.com/michaelmacinnis/knight/internal/reader/scanner"
	"github.com/michaelmacinnis/knight/internal/system/history"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/function"
	"github.com/michaelmacinnis/knight/internal/type/str"
)

const (
	continuation = "...> "
	prompt       = "knight> "
)

// Run reads expressions from the terminal and runs them in e. It returns
// the status requested by QUIT or zero at the end of input.
func Run(e *env.T, fns *function.Table) int {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		return 1
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		return 1
	}

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		e.Log().Debug("history not loaded", "err", err)
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			e.Log().Warn("history not saved", "err", err)
		}
	}()

	pending := ""

	for {
		if err := uncooked.ApplyMode(); err != nil {
			println(err.Error())
			return 1
		}

		p := prompt
		if pending != "" {
			p = continuation
		}

		line, err := cli.Prompt(p)

		if merr := cooked.ApplyMode(); merr != nil {
			println(merr.Error())
			return 1
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			pending = ""
			continue
		} else if err != nil {
			_, _ = os.Stdout.Write([]byte("\n"))
			return 0
		}

		if line != "" {
			cli.AppendHistory(line)
		}

		src := pending + line + "\n"

		cs, err := Parse(src, e, fns)
		if failure.Incomplete(err) {
			pending = src
			continue
		}

		pending = ""

		if err != nil {
			report(err)
			continue
		}

		if code, done := Evaluate(cs, e, os.Stdout); done {
			return code
		}
	}
}

// Parse parses every expression in src.
func Parse(src string, e *env.T, fns *function.Table) ([]cell.T, error) {
	s := scanner.String("knight", src)

	var cs []cell.T

	for {
		c, err := parser.Parse(s, e, fns)
		if errors.Is(err, failure.ErrNothingToParse) {
			return cs, nil
		} else if err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
}

// Evaluate runs each expression in cs, echoing results to w. It returns
// true, and an exit status, if QUIT was called.
func Evaluate(cs []cell.T, e *env.T, w io.Writer) (int, bool) {
	for _, c := range cs {
		v, err := engine.Run(c, e)

		if ferr := e.Flush(); ferr != nil && err == nil {
			err = ferr
		}

		if code, ok := failure.IsQuit(err); ok {
			return code, true
		} else if err != nil {
			report(err)
			return 0, false
		}

		fmt.Fprintln(w, Echo(v))
	}

	return 0, false
}

// Echo returns the text displayed for the result v.
func Echo(v cell.T) string {
	if str.Is(v) {
		return adapted.CanonicalString(str.To(v).String())
	}

	return literal.String(v)
}

func report(err error) {
	println("knight: " + err.Error())
}
