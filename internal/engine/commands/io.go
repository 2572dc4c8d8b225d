// Released under an MIT license. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/interface/literal"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/null"
	"github.com/michaelmacinnis/knight/internal/type/str"
)

func dump(args []cell.T, e *env.T) (cell.T, error) {
	c, err := engine.Run(args[0], e)
	if err != nil {
		return nil, err
	}

	if _, err := e.Write([]byte(literal.String(c) + "\n")); err != nil {
		return nil, &failure.IO{Err: err}
	}

	return c, nil
}

// A trailing backslash suppresses the newline and forces a flush.
func output(args []cell.T, e *env.T) (cell.T, error) {
	t, err := engine.Text(args[0], e)
	if err != nil {
		return nil, err
	}

	if s, ok := t.TrimSuffix(`\`); ok {
		_, err = e.Write([]byte(s.String()))
		if err == nil {
			err = e.Flush()
		}
	} else {
		_, err = e.Write([]byte(t.String() + "\n"))
	}

	if err != nil {
		return nil, &failure.IO{Err: err}
	}

	return null.Null, nil
}

func prompt(_ []cell.T, e *env.T) (cell.T, error) {
	t, ok, err := e.ReadLine()
	if err != nil {
		return nil, &failure.IO{Err: err}
	}

	if !ok {
		return null.Null, nil
	}

	return str.New(t), nil
}

func system(args []cell.T, e *env.T) (cell.T, error) {
	t, err := engine.Text(args[0], e)
	if err != nil {
		return nil, err
	}

	e.Log().Debug("system", slog.String("command", t.String()))

	out, err := e.System(t)
	if err != nil {
		return nil, &failure.IO{Err: err}
	}

	return str.New(out), nil
}
