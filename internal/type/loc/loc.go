// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of parsed code.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Line int    // Line number (row).
	Name string // Label for the source of this code.
}

type loc = T

func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line)
}
