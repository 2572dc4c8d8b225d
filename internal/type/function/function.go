// Released under an MIT license. See LICENSE.

// Package function provides knight's builtin function definitions and
// the registry that maps one-character names to them.
package function

import (
	"fmt"
	"sort"

	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/env"
)

// MaxArity is the largest number of arguments a function may take.
const MaxArity = 4

// Impl is a native function implementation. It receives its arguments
// unevaluated and decides which to evaluate, how often and in what order.
type Impl func(args []cell.T, e *env.T) (cell.T, error)

// T (function) is an immutable builtin function definition.
type T struct {
	arity int
	char  byte
	desc  string
	impl  Impl
}

// Arity returns the number of arguments f takes.
func (f *T) Arity() int {
	return f.arity
}

// Call invokes f's implementation with the unevaluated arguments args.
func (f *T) Call(args []cell.T, e *env.T) (cell.T, error) {
	return f.impl(args, e)
}

// Char returns the character f is registered under.
func (f *T) Char() byte {
	return f.char
}

// Desc returns a one-line description of f.
func (f *T) Desc() string {
	return f.desc
}

func (f *T) String() string {
	return string(f.char)
}

// Table maps names to function definitions.
type Table struct {
	m map[byte]*T
}

// NewTable creates an empty function table.
func NewTable() *Table {
	return &Table{m: map[byte]*T{}}
}

// Each calls f for every function in the table t in name order.
func (t *Table) Each(f func(fn *T)) {
	names := make([]byte, 0, len(t.m))
	for k := range t.m {
		names = append(names, k)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, k := range names {
		f(t.m[k])
	}
}

// Lookup returns the function named c, if there is one.
func (t *Table) Lookup(c byte) (*T, bool) {
	f, ok := t.m[c]
	return f, ok
}

// Register associates a new function definition with the name c,
// replacing any previous definition. Calls that were already parsed
// keep the definition they were parsed with.
func (t *Table) Register(c byte, arity int, desc string, impl Impl) *T {
	if c <= ' ' || c > '~' {
		panic(fmt.Sprintf("invalid function name %q", c))
	}

	if arity < 0 || arity > MaxArity {
		panic(fmt.Sprintf("invalid arity %d for function %q", arity, c))
	}

	f := &T{arity: arity, char: c, desc: desc, impl: impl}
	t.m[c] = f

	return f
}
