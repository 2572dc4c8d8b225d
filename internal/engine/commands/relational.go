// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/boolean"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/str"
)

func eq(args []cell.T, e *env.T) (cell.T, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	r, err := engine.Run(args[1], e)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(l.Equal(r)), nil
}

func gt(args []cell.T, e *env.T) (cell.T, error) {
	n, err := compare('>', args, e)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(n > 0), nil
}

func lt(args []cell.T, e *env.T) (cell.T, error) {
	n, err := compare('<', args, e)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(n < 0), nil
}

// compare evaluates args[0] and compares it to args[1] converted to the
// same kind. The result is negative, zero or positive.
func compare(fn byte, args []cell.T, e *env.T) (int, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return 0, err
	}

	switch l := l.(type) {
	case num.T:
		r, err := engine.Int(args[1], e)
		if err != nil {
			return 0, err
		}

		return order(int64(l), r), nil
	case boolean.T:
		r, err := engine.Bool(args[1], e)
		if err != nil {
			return 0, err
		}

		return order(toInt(bool(l)), toInt(r)), nil
	case str.T:
		r, err := engine.Text(args[1], e)
		if err != nil {
			return 0, err
		}

		return l.Text().Compare(r), nil
	}

	return 0, invalid(fn, l)
}

func order(l, r int64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}

	return 0
}

func toInt(b bool) int64 {
	if b {
		return 1
	}

	return 0
}
