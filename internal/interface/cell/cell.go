// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all knight values.
package cell

// T (cell) is the basic unit of storage in knight. Literals and
// unevaluated expression trees are both cells.
type T interface {
	Equal(c T) bool
	Name() string
}
