// Released under an MIT license. See LICENSE.

// Package call provides knight's unevaluated function application type.
package call

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/interface/literal"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/function"
)

const name = "Function"

// T (call) is a function applied to unevaluated arguments. The number of
// arguments always matches the function's arity and never changes.
type T struct {
	args []cell.T
	fn   *function.T
}

// New creates a new call of fn with args.
func New(fn *function.T, args ...cell.T) *T {
	if len(args) != fn.Arity() {
		panic(fmt.Sprintf(
			"function %q takes %d arguments, passed %d",
			fn.Char(), fn.Arity(), len(args),
		))
	}

	return &T{args: append([]cell.T(nil), args...), fn: fn}
}

// The call type is a cell.

// Equal returns true if c is the call k. Calls are compared by identity.
func (k *T) Equal(c cell.T) bool {
	return Is(c) && k == To(c)
}

// Name returns the name of the call type.
func (k *T) Name() string {
	return name
}

// The call type has a literal representation.

// Literal returns the debug representation of k.
func (k *T) Literal() string {
	var b strings.Builder

	b.WriteString(name + "(")
	b.WriteByte(k.fn.Char())
	b.WriteString(", [")

	for i, a := range k.args {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(literal.String(a))
	}

	b.WriteString("])")

	return b.String()
}

// Methods specific to call.

// Apply runs k's function with k's unevaluated arguments.
func (k *T) Apply(e *env.T) (cell.T, error) {
	return k.fn.Call(k.args, e)
}

// Arg returns k's i-th argument.
func (k *T) Arg(i int) cell.T {
	return k.args[i]
}

// Func returns the function k applies.
func (k *T) Func() *function.T {
	return k.fn
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if k, ok := c.(*T); ok {
		return k
	}

	panic("not a " + name)
}
