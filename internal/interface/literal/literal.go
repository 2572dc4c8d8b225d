// Released under an MIT license. See LICENSE.

// Package literal defines the interface for knight's debug representation.
package literal

import (
	"github.com/michaelmacinnis/knight/internal/interface/cell"
)

// T (literal) is any type that has a debug representation.
type T interface {
	Literal() string
}

// String returns the debug representation for a cell.
// Cells without one are rendered using their type name.
func String(c cell.T) string {
	l, ok := c.(T)
	if !ok {
		return c.Name() + "(?)"
	}

	return l.Literal()
}
