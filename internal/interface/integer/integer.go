// Released under an MIT license. See LICENSE.

// Package integer defines the interface for knight's numeric conversions.
package integer

// T (integer) is anything that can be converted to a number.
type T interface {
	Int() int64
}
