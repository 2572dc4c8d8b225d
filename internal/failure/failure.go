// Released under an MIT license. See LICENSE.

// Package failure defines the errors produced while parsing and running
// knight programs.
//
// Parsing and evaluation never retry. The first error aborts the current
// parse or run and is returned, unchanged, to the caller. Quit is not a
// failure: it asks the driver to exit with the given status.
package failure

import (
	"errors"
	"fmt"
)

// Parse errors.

// ErrNothingToParse is returned when the source ends before a token is found.
var ErrNothingToParse = errors.New("a token was expected")

// UnknownTokenStart is returned for a character that cannot start an expression.
type UnknownTokenStart struct {
	Char byte
	Line int
}

func (e *UnknownTokenStart) Error() string {
	return fmt.Sprintf("line %d: unknown token start %q", e.Line, e.Char)
}

// UnterminatedQuote is returned when the source ends inside a string.
type UnterminatedQuote struct {
	Line int // Line the string started on.
}

func (e *UnterminatedQuote) Error() string {
	return fmt.Sprintf("line %d: unterminated quote encountered", e.Line)
}

// MissingFunctionArgument is returned when the source ends before all of a
// function's arguments are parsed. Index is zero-based.
type MissingFunctionArgument struct {
	Name  byte
	Index int
	Line  int // Line the function started on.
}

func (e *MissingFunctionArgument) Error() string {
	return fmt.Sprintf(
		"line %d: missing argument %d for function %q",
		e.Line, e.Index, e.Name,
	)
}

// InvalidString is returned for a string literal with illegal characters.
type InvalidString struct {
	Line int
	Err  error
}

func (e *InvalidString) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *InvalidString) Unwrap() error {
	return e.Err
}

// IsParse returns true if err is, or wraps, a parse error.
func IsParse(err error) bool {
	if errors.Is(err, ErrNothingToParse) {
		return true
	}

	var (
		u *UnknownTokenStart
		q *UnterminatedQuote
		m *MissingFunctionArgument
		s *InvalidString
	)

	return errors.As(err, &u) || errors.As(err, &q) ||
		errors.As(err, &m) || errors.As(err, &s)
}

// Incomplete returns true if err means more source could complete the parse.
func Incomplete(err error) bool {
	var (
		m *MissingFunctionArgument
		q *UnterminatedQuote
	)

	return errors.As(err, &m) || errors.As(err, &q)
}

// Runtime errors.

// DivisionByZero is returned for division or modulo by zero.
type DivisionByZero struct {
	Modulo bool
}

func (e *DivisionByZero) Error() string {
	if e.Modulo {
		return "invalid modulo by zero"
	}

	return "invalid divide by zero"
}

// UnknownIdentifier is returned when an unassigned variable is evaluated.
type UnknownIdentifier struct {
	Name string
}

func (e *UnknownIdentifier) Error() string {
	return fmt.Sprintf("identifier %q is undefined", e.Name)
}

// InvalidOperand is returned when a function is passed an operand kind it
// does not accept.
type InvalidOperand struct {
	Func    byte
	Operand string
}

func (e *InvalidOperand) Error() string {
	return fmt.Sprintf(
		"invalid operand kind %q for function %q", e.Operand, e.Func,
	)
}

// UndefinedConversion is returned when a value has no conversion to the
// requested kind.
type UndefinedConversion struct {
	Target string
	Source string
}

func (e *UndefinedConversion) Error() string {
	return fmt.Sprintf("undefined conversion from %s to %s", e.Source, e.Target)
}

// Overflow is returned by checked arithmetic when a result does not fit.
type Overflow struct {
	Func byte
	LHS  int64
	RHS  int64
}

func (e *Overflow) Error() string {
	return fmt.Sprintf("%q overflowed with operands %d and %d", e.Func, e.LHS, e.RHS)
}

// Quit requests that the program exit with Code.
type Quit struct {
	Code int
}

func (e *Quit) Error() string {
	return fmt.Sprintf("quit with status %d", e.Code)
}

// Parse wraps a parse error encountered while running a program.
type Parse struct {
	Err error
}

func (e *Parse) Error() string {
	return e.Err.Error()
}

func (e *Parse) Unwrap() error {
	return e.Err
}

// IO wraps an error from an input, output or shell capability.
type IO struct {
	Err error
}

func (e *IO) Error() string {
	return "i/o error: " + e.Err.Error()
}

func (e *IO) Unwrap() error {
	return e.Err
}

// IsQuit returns the requested exit status if err is, or wraps, a Quit.
func IsQuit(err error) (int, bool) {
	var q *Quit
	if errors.As(err, &q) {
		return q.Code, true
	}

	return 0, false
}
