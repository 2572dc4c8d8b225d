// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/str"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

func get(args []cell.T, e *env.T) (cell.T, error) {
	t, start, length, err := ranged(args, e)
	if err != nil {
		return nil, err
	}

	return str.New(t.Slice(start, length)), nil
}

func length(args []cell.T, e *env.T) (cell.T, error) {
	t, err := engine.Text(args[0], e)
	if err != nil {
		return nil, err
	}

	return num.Int(int64(t.Len())), nil
}

func substitute(args []cell.T, e *env.T) (cell.T, error) {
	t, start, length, err := ranged(args, e)
	if err != nil {
		return nil, err
	}

	r, err := engine.Text(args[3], e)
	if err != nil {
		return nil, err
	}

	return str.New(t.Replace(start, length, r)), nil
}

func ranged(args []cell.T, e *env.T) (text.T, int64, int64, error) {
	t, err := engine.Text(args[0], e)
	if err != nil {
		return text.T{}, 0, 0, err
	}

	start, err := engine.Int(args[1], e)
	if err != nil {
		return text.T{}, 0, 0, err
	}

	length, err := engine.Int(args[2], e)
	if err != nil {
		return text.T{}, 0, 0, err
	}

	return t, start, length, nil
}
