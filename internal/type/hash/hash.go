// Released under an MIT license. See LICENSE.

// Package hash provides knight's variable interning table.
package hash

import (
	"github.com/google/btree"

	"github.com/michaelmacinnis/knight/internal/type/variable"
)

const degree = 8

// T (hash) maps names to variables. Each name is associated with exactly
// one variable for the lifetime of the table.
type T struct {
	tree *btree.BTreeG[*variable.T]
}

// New creates a new, empty hash.
func New() *T {
	return &T{tree: btree.NewG(degree, less)}
}

// Each calls f for every variable in the hash h in name order until f returns false.
func (h *T) Each(f func(v *variable.T) bool) {
	h.tree.Ascend(f)
}

// Get returns the variable named k, creating it if it does not exist.
func (h *T) Get(k string) *variable.T {
	if v, ok := h.Lookup(k); ok {
		return v
	}

	v := variable.New(k)
	h.tree.ReplaceOrInsert(v)

	return v
}

// Lookup returns the variable named k, if it exists.
func (h *T) Lookup(k string) (*variable.T, bool) {
	return h.tree.Get(variable.New(k))
}

// Size returns the number of variables in the hash h.
func (h *T) Size() int {
	return h.tree.Len()
}

func less(a, b *variable.T) bool {
	return a.Ident() < b.Ident()
}
