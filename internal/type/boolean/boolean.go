// Released under an MIT license. See LICENSE.

// Package boolean provides knight's boolean type.
package boolean

import (
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

const name = "Boolean"

// T (boolean) wraps Go's bool type.
type T bool

//nolint:gochecknoglobals
var (
	False cell.T = T(false)
	True  cell.T = T(true)

	words = [2]text.T{text.Must("false"), text.Must("true")}
)

// Bool returns True or False for the bool b.
func Bool(b bool) cell.T {
	if b {
		return True
	}

	return False
}

// The boolean type is a cell.

// Equal returns true if c is a boolean with the same value as b.
func (b T) Equal(c cell.T) bool {
	return Is(c) && b == To(c)
}

// Name returns the name of the boolean type.
func (b T) Name() string {
	return name
}

// The boolean type converts to a boolean, number and text.

// Bool returns the value of b.
func (b T) Bool() bool {
	return bool(b)
}

// Int returns 1 for true and 0 for false.
func (b T) Int() int64 {
	if b {
		return 1
	}

	return 0
}

// Text returns the text "true" or "false".
func (b T) Text() text.T {
	return words[b.Int()]
}

// The boolean type has a literal representation.

// Literal returns the debug representation of b.
func (b T) Literal() string {
	return name + "(" + b.Text().String() + ")"
}

// The two functions below could be generated for each type.

// Is returns true if c is a T.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// To returns a T if c is a T; Otherwise it panics.
func To(c cell.T) T {
	if b, ok := c.(T); ok {
		return b
	}

	panic("not a " + name)
}
