// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed knight code.
//
// Evaluation is a walk over the tree produced by the parser. Literals
// evaluate to themselves, variables to the value stored in them, and calls
// to whatever their function returns. Functions receive their arguments
// unevaluated and use Run and the conversions below to evaluate them.
package engine

import (
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/boolean"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/interface/integer"
	"github.com/michaelmacinnis/knight/internal/interface/textual"
	"github.com/michaelmacinnis/knight/internal/type/call"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/text"
	"github.com/michaelmacinnis/knight/internal/type/variable"
)

// Run evaluates c in the environment e.
func Run(c cell.T, e *env.T) (cell.T, error) {
	switch t := c.(type) {
	case *variable.T:
		v := t.Get()
		if v == nil {
			return nil, &failure.UnknownIdentifier{Name: t.Ident()}
		}

		return v, nil
	case *call.T:
		return t.Apply(e)
	}

	return c, nil
}

// Value evaluates c until it is no longer a variable or call.
// A block that evaluates to itself recurses until the stack is exhausted.
func Value(c cell.T, e *env.T) (cell.T, error) {
	if !unevaluated(c) {
		return c, nil
	}

	v, err := Run(c, e)
	if err != nil {
		return nil, err
	}

	return Value(v, e)
}

// Bool evaluates c and converts the result to a bool.
func Bool(c cell.T, e *env.T) (bool, error) {
	v, err := Value(c, e)
	if err != nil {
		return false, err
	}

	b, ok := v.(boolean.T)
	if !ok {
		return false, undefined("Boolean", v)
	}

	return b.Bool(), nil
}

// Int evaluates c and converts the result to an int64.
func Int(c cell.T, e *env.T) (int64, error) {
	v, err := Value(c, e)
	if err != nil {
		return 0, err
	}

	i, ok := v.(integer.T)
	if !ok {
		return 0, undefined("Number", v)
	}

	return i.Int(), nil
}

// Text evaluates c and converts the result to text.
func Text(c cell.T, e *env.T) (text.T, error) {
	v, err := Value(c, e)
	if err != nil {
		return text.T{}, err
	}

	t, ok := v.(textual.T)
	if !ok {
		return text.T{}, undefined("String", v)
	}

	return t.Text(), nil
}

func undefined(target string, c cell.T) error {
	return &failure.UndefinedConversion{Target: target, Source: c.Name()}
}

func unevaluated(c cell.T) bool {
	return variable.Is(c) || call.Is(c)
}
