// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/boolean"
	"github.com/michaelmacinnis/knight/internal/type/env"
)

// AND and OR return the deciding operand itself, not a boolean.

func and(args []cell.T, e *env.T) (cell.T, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	ok, err := engine.Bool(l, e)
	if err != nil || !ok {
		return l, err
	}

	return engine.Run(args[1], e)
}

func not(args []cell.T, e *env.T) (cell.T, error) {
	b, err := engine.Bool(args[0], e)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(!b), nil
}

func or(args []cell.T, e *env.T) (cell.T, error) {
	l, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	ok, err := engine.Bool(l, e)
	if err != nil || ok {
		return l, err
	}

	return engine.Run(args[1], e)
}
