// Released under an MIT license. See LICENSE.

// Package num provides knight's integer type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

const name = "Number"

// T (number) wraps Go's int64 type.
type T int64

// Int creates a new number cell.
func Int(i int64) cell.T {
	return T(i)
}

// Parse converts t to a number. Leading and trailing ASCII whitespace is
// ignored, an optional sign is accepted, and the longest run of digits that
// follows is used. Text without leading digits is zero. Overflow wraps.
func Parse(t text.T) int64 {
	s := t.String()

	i := 0
	for i < len(s) && space(s[i]) {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	var v int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int64(s[i]-'0')
	}

	if negative {
		return -v
	}

	return v
}

// The number type is a cell.

// Equal returns true if c is the same number as n.
func (n T) Equal(c cell.T) bool {
	return Is(c) && n == To(c)
}

// Name returns the name of the number type.
func (n T) Name() string {
	return name
}

// The number type converts to a boolean, number and text.

// Bool returns true if n is not zero.
func (n T) Bool() bool {
	return n != 0
}

// Int returns the value of n.
func (n T) Int() int64 {
	return int64(n)
}

// Text returns the decimal representation of n.
func (n T) Text() text.T {
	return text.Int(int64(n))
}

// The number type has a literal representation.

// Literal returns the debug representation of n.
func (n T) Literal() string {
	return name + "(" + strconv.FormatInt(int64(n), 10) + ")"
}

// The two functions below could be generated for each type.

// Is returns true if c is a T.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}

// To returns a T if c is a T; Otherwise it panics.
func To(c cell.T) T {
	if n, ok := c.(T); ok {
		return n
	}

	panic("not a " + name)
}

func space(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}
