// Released under an MIT license. See LICENSE.

// Package slot provides the storage cell behind a knight variable.
package slot

import (
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/interface/reference"
)

// T (slot) holds an optional cell value.
type T struct {
	c cell.T
}

// New creates a new, empty slot.
func New() *T {
	return &T{}
}

// Empty returns true if nothing has been stored in slot s.
func (s *T) Empty() bool {
	return s.c == nil
}

// Get returns the cell in slot s, or nil if the slot is empty.
func (s *T) Get() cell.T {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *T) Set(c cell.T) {
	s.c = c
}

var _ reference.T = (*T)(nil)
