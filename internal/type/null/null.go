// Released under an MIT license. See LICENSE.

// Package null provides knight's null type.
package null

import (
	"github.com/michaelmacinnis/knight/internal/interface/boolean"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/interface/integer"
	"github.com/michaelmacinnis/knight/internal/interface/literal"
	"github.com/michaelmacinnis/knight/internal/interface/textual"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

const name = "Null"

// T (null) is the type of knight's only null value.
type T struct{}

// Null is the null value.
//
//nolint:gochecknoglobals
var Null cell.T = T{}

var word = text.Must("null") //nolint:gochecknoglobals

// The null type is a cell.

// Equal returns true if c is also null.
func (T) Equal(c cell.T) bool {
	return Is(c)
}

// Name returns the name of the null type.
func (T) Name() string {
	return name
}

// The null type converts to a boolean, number and text.

// Bool returns false.
func (T) Bool() bool {
	return false
}

// Int returns zero.
func (T) Int() int64 {
	return 0
}

// Text returns the text "null".
func (T) Text() text.T {
	return word
}

// The null type has a literal representation.

// Literal returns the debug representation of null.
func (T) Literal() string {
	return name + "()"
}

// Is returns true if c is null.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	_ = boolean.T(t)
	_ = integer.T(t)
	_ = literal.T(t)
	_ = textual.T(t)
}
