// Released under an MIT license. See LICENSE.

// Package boolean defines the interface for knight values with a truth value.
package boolean

// T (boolean) is anything that can be converted to true or false.
type T interface {
	Bool() bool
}
