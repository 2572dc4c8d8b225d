// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/str"
)

func add(args []cell.T, e *env.T) (cell.T, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	switch l := l.(type) {
	case num.T:
		r, err := engine.Int(args[1], e)
		if err != nil {
			return nil, err
		}

		return checked(e, '+', int64(l), r, plus)
	case str.T:
		r, err := engine.Text(args[1], e)
		if err != nil {
			return nil, err
		}

		return str.New(l.Text().Concat(r)), nil
	}

	return nil, invalid('+', l)
}

func div(args []cell.T, e *env.T) (cell.T, error) {
	l, r, err := numbers('/', args, e)
	if err != nil {
		return nil, err
	}

	if r == 0 {
		return nil, &failure.DivisionByZero{}
	}

	if e.Checked() && l == math.MinInt64 && r == -1 {
		return nil, &failure.Overflow{Func: '/', LHS: l, RHS: r}
	}

	return num.Int(l / r), nil
}

func mod(args []cell.T, e *env.T) (cell.T, error) {
	l, r, err := numbers('%', args, e)
	if err != nil {
		return nil, err
	}

	if r == 0 {
		return nil, &failure.DivisionByZero{Modulo: true}
	}

	return num.Int(l % r), nil
}

func mul(args []cell.T, e *env.T) (cell.T, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	switch l := l.(type) {
	case num.T:
		r, err := engine.Int(args[1], e)
		if err != nil {
			return nil, err
		}

		return checked(e, '*', int64(l), r, times)
	case str.T:
		n, err := engine.Int(args[1], e)
		if err != nil {
			return nil, err
		}

		t, ok := l.Text().Repeat(n)
		if !ok {
			return nil, &failure.Overflow{Func: '*', LHS: int64(l.Text().Len()), RHS: n}
		}

		return str.New(t), nil
	}

	return nil, invalid('*', l)
}

func pow(args []cell.T, e *env.T) (cell.T, error) {
	base, exponent, err := numbers('^', args, e)
	if err != nil {
		return nil, err
	}

	switch {
	case base == 1:
		return num.Int(1), nil
	case base == -1:
		if exponent%2 == 0 {
			return num.Int(1), nil
		}

		return num.Int(-1), nil
	case exponent == 0:
		return num.Int(1), nil
	case exponent == 1:
		return num.Int(base), nil
	case exponent < 0:
		return num.Int(0), nil
	}

	// Exponentiation by squaring. The base is only squared while higher
	// bits of the exponent remain, so a checked overflow means the result
	// itself does not fit.
	b, result := base, int64(1)
	for n := exponent; n > 0; n >>= 1 {
		var ok bool

		if n&1 == 1 {
			if result, ok = times(result, b); !ok && e.Checked() {
				return nil, &failure.Overflow{Func: '^', LHS: base, RHS: exponent}
			}
		}

		if n > 1 {
			if b, ok = times(b, b); !ok && e.Checked() {
				return nil, &failure.Overflow{Func: '^', LHS: base, RHS: exponent}
			}
		}
	}

	return num.Int(result), nil
}

func sub(args []cell.T, e *env.T) (cell.T, error) {
	l, r, err := numbers('-', args, e)
	if err != nil {
		return nil, err
	}

	return checked(e, '-', l, r, minus)
}

// Helpers.

func checked(e *env.T, fn byte, l, r int64, op func(l, r int64) (int64, bool)) (cell.T, error) {
	v, ok := op(l, r)
	if !ok && e.Checked() {
		return nil, &failure.Overflow{Func: fn, LHS: l, RHS: r}
	}

	return num.Int(v), nil
}

func invalid(fn byte, c cell.T) error {
	return &failure.InvalidOperand{Func: fn, Operand: c.Name()}
}

func minus(l, r int64) (int64, bool) {
	v := l - r
	return v, (r >= 0) == (v <= l)
}

// numbers evaluates args[0], which must be a number, and converts args[1] to a number.
func numbers(fn byte, args []cell.T, e *env.T) (int64, int64, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return 0, 0, err
	}

	n, ok := l.(num.T)
	if !ok {
		return 0, 0, invalid(fn, l)
	}

	r, err := engine.Int(args[1], e)
	if err != nil {
		return 0, 0, err
	}

	return int64(n), r, nil
}

func plus(l, r int64) (int64, bool) {
	v := l + r
	return v, (r >= 0) == (v >= l)
}

func times(l, r int64) (int64, bool) {
	v := l * r
	if l == 0 || r == 0 {
		return v, true
	}

	if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
		return v, false
	}

	return v, v/r == l
}
