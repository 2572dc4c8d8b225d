// Released under an MIT license. See LICENSE.

// Package reference defines the interface for knight's variable cells.
package reference

import (
	"github.com/michaelmacinnis/knight/internal/interface/cell"
)

// T (reference) is anything that can hold a value. Get returns nil
// if nothing has been stored.
type T interface {
	Get() cell.T
	Set(c cell.T)
}
