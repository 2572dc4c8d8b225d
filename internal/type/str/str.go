// Released under an MIT license. See LICENSE.

// Package str provides knight's string type.
package str

import (
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

const name = "String"

// T (string) wraps a validated text.T.
type T struct {
	t text.T
}

// New creates a new string cell.
func New(t text.T) cell.T {
	return T{t}
}

// The string type is a cell.

// Equal returns true if c is a string with the same characters as s.
func (s T) Equal(c cell.T) bool {
	return Is(c) && s.t == To(c).t
}

// Name returns the name of the string type.
func (s T) Name() string {
	return name
}

// The string type converts to a boolean, number and text.

// Bool returns true if s is not empty.
func (s T) Bool() bool {
	return !s.t.Empty()
}

// Int returns the number at the start of s.
func (s T) Int() int64 {
	return num.Parse(s.t)
}

// Text returns the characters of s.
func (s T) Text() text.T {
	return s.t
}

// The string type has a literal representation.

// Literal returns the debug representation of s.
func (s T) Literal() string {
	return name + "(" + s.t.String() + ")"
}

// String returns the characters of s as a Go string.
func (s T) String() string {
	return s.t.String()
}

// The two functions below could be generated for each type.

// Is returns true if c is a T.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// To returns a T if c is a T; Otherwise it panics.
func To(c cell.T) T {
	if s, ok := c.(T); ok {
		return s
	}

	panic("not a " + name)
}
