// Released under an MIT license. See LICENSE.

// Package variable provides knight's variable type.
//
// Variables are created by an environment's interning table. Two variables
// are the same variable only if they are the same *T; variables from
// different environments are never equal even when their names match.
package variable

import (
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/slot"
)

const name = "Variable"

// T (variable) is a named, identity-stable slot.
type T struct {
	ident string
	*storage
}

// We alias slot.T to storage so that when embedded it is easy to refer to
// it by name. Embedding storage also lets us access its methods directly.
type storage = slot.T

// New creates a new, unassigned variable. Only an interning table should
// call New; everything else should obtain variables from an environment.
func New(ident string) *T {
	return &T{ident: ident, storage: slot.New()}
}

// The variable type is a cell.

// Equal returns true if c is the variable v.
func (v *T) Equal(c cell.T) bool {
	return Is(c) && v == To(c)
}

// Name returns the name of the variable type.
func (v *T) Name() string {
	return name
}

// The variable type has a literal representation.

// Literal returns the debug representation of v.
func (v *T) Literal() string {
	return name + "(" + v.ident + ")"
}

// Methods specific to variable.

// Ident returns the identifier v was interned under.
func (v *T) Ident() string {
	return v.ident
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if v, ok := c.(*T); ok {
		return v
	}

	panic("not a " + name)
}
