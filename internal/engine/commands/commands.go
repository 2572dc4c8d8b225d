// Released under an MIT license. See LICENSE.

// Package commands provides knight's builtin functions.
package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/michaelmacinnis/knight/internal/type/function"
)

// Describe writes the name, arity and description of each builtin to w.
func Describe(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0) //nolint:gomnd

	Table().Each(func(fn *function.T) {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", fn, fn.Arity(), fn.Desc())
	})

	return tw.Flush()
}

// Table returns a new function table containing every builtin.
// Each call returns an independent table; EVAL parses with the table
// that contains it.
func Table() *function.Table {
	t := function.NewTable()

	t.Register('P', 0, "read a line from input", prompt)
	t.Register('R', 0, "random number", random)

	t.Register('E', 1, "parse text as a program and run it", evaluate(t))
	t.Register('B', 1, "return argument unevaluated", block)
	t.Register('C', 1, "run a block", run)
	t.Register('`', 1, "run text as a shell command", system)
	t.Register('Q', 1, "quit with the given status", quit)
	t.Register('!', 1, "logical negation", not)
	t.Register('L', 1, "length of text", length)
	t.Register('D', 1, "write debug representation", dump)
	t.Register('O', 1, "write text", output)

	t.Register('+', 2, "add or concatenate", add)
	t.Register('-', 2, "subtract", sub)
	t.Register('*', 2, "multiply or repeat", mul)
	t.Register('/', 2, "divide", div)
	t.Register('%', 2, "modulo", mod)
	t.Register('^', 2, "exponentiate", pow)
	t.Register('?', 2, "equal", eq)
	t.Register('<', 2, "less than", lt)
	t.Register('>', 2, "greater than", gt)
	t.Register('&', 2, "logical and", and)
	t.Register('|', 2, "logical or", or)
	t.Register(';', 2, "sequence", then)
	t.Register('=', 2, "assign", assign)
	t.Register('W', 2, "while loop", while)

	t.Register('I', 3, "if", choose)
	t.Register('G', 3, "substring", get)

	t.Register('S', 4, "substitute", substitute)

	return t
}
