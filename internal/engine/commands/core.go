// Released under an MIT license. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/reader/parser"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/function"
	"github.com/michaelmacinnis/knight/internal/type/null"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/variable"
)

func assign(args []cell.T, e *env.T) (cell.T, error) {
	v, ok := args[0].(*variable.T)
	if !ok {
		return nil, invalid('=', args[0])
	}

	c, err := engine.Run(args[1], e)
	if err != nil {
		return nil, err
	}

	v.Set(c)

	return c, nil
}

func block(args []cell.T, _ *env.T) (cell.T, error) {
	return args[0], nil
}

func choose(args []cell.T, e *env.T) (cell.T, error) {
	b, err := engine.Bool(args[0], e)
	if err != nil {
		return nil, err
	}

	if b {
		return engine.Run(args[1], e)
	}

	return engine.Run(args[2], e)
}

// evaluate returns EVAL's implementation. Source is parsed using fns.
func evaluate(fns *function.Table) function.Impl {
	return func(args []cell.T, e *env.T) (cell.T, error) {
		t, err := engine.Text(args[0], e)
		if err != nil {
			return nil, err
		}

		e.Log().Debug("eval", slog.Int("length", t.Len()))

		c, err := parser.String("eval", t.String(), e, fns)
		if err != nil {
			return nil, &failure.Parse{Err: err}
		}

		return engine.Run(c, e)
	}
}

func quit(args []cell.T, e *env.T) (cell.T, error) {
	n, err := engine.Int(args[0], e)
	if err != nil {
		return nil, err
	}

	e.Log().Debug("quit", slog.Int64("status", n))

	return nil, &failure.Quit{Code: int(n)}
}

func random(_ []cell.T, e *env.T) (cell.T, error) {
	return num.Int(e.Random()), nil
}

func run(args []cell.T, e *env.T) (cell.T, error) {
	b, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	return engine.Run(b, e)
}

func then(args []cell.T, e *env.T) (cell.T, error) {
	if _, err := engine.Run(args[0], e); err != nil {
		return nil, err
	}

	return engine.Run(args[1], e)
}

func while(args []cell.T, e *env.T) (cell.T, error) {
	for {
		b, err := engine.Bool(args[0], e)
		if err != nil {
			return nil, err
		}

		if !b {
			return null.Null, nil
		}

		if _, err := engine.Run(args[1], e); err != nil {
			return nil, err
		}
	}
}
