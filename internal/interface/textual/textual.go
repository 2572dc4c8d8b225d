// Released under an MIT license. See LICENSE.

// Package textual defines the interface for knight values that convert to text.
package textual

import (
	"github.com/michaelmacinnis/knight/internal/type/text"
)

// T (textual) is anything that can be converted to text.
type T interface {
	Text() text.T
}
