package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassification(t *testing.T) {
	for _, tc := range []struct {
		err        error
		parse      bool
		incomplete bool
	}{
		{ErrNothingToParse, true, false},
		{&UnknownTokenStart{Char: '$', Line: 1}, true, false},
		{&UnterminatedQuote{Line: 1}, true, true},
		{&MissingFunctionArgument{Name: '+', Index: 1, Line: 1}, true, true},
		{&InvalidString{Line: 1, Err: errors.New("bad")}, true, false},
		{fmt.Errorf("wrapped: %w", &UnterminatedQuote{Line: 2}), true, true},
		{&Parse{Err: &MissingFunctionArgument{Name: '+'}}, true, true},
		{&DivisionByZero{}, false, false},
		{&Quit{Code: 1}, false, false},
	} {
		if IsParse(tc.err) != tc.parse {
			t.Fatalf("%v: expected IsParse to be %v", tc.err, tc.parse)
		}

		if Incomplete(tc.err) != tc.incomplete {
			t.Fatalf("%v: expected Incomplete to be %v", tc.err, tc.incomplete)
		}
	}
}

func TestIsQuit(t *testing.T) {
	code, ok := IsQuit(fmt.Errorf("deep: %w", &Quit{Code: 42}))
	if !ok || code != 42 {
		t.Fatalf("expected quit 42, got %d, %v", code, ok)
	}

	if _, ok := IsQuit(&DivisionByZero{}); ok {
		t.Fatal("division by zero is not a quit")
	}
}

func TestMessages(t *testing.T) {
	for _, tc := range []struct {
		err      error
		expected string
	}{
		{&DivisionByZero{}, "invalid divide by zero"},
		{&DivisionByZero{Modulo: true}, "invalid modulo by zero"},
		{&UnknownIdentifier{Name: "x"}, `identifier "x" is undefined`},
		{&MissingFunctionArgument{Name: '+', Index: 1, Line: 3}, `line 3: missing argument 1 for function '+'`},
		{&UnterminatedQuote{Line: 2}, "line 2: unterminated quote encountered"},
		{&UndefinedConversion{Target: "Number", Source: "Function"}, "undefined conversion from Function to Number"},
	} {
		if actual := tc.err.Error(); actual != tc.expected {
			t.Fatalf("expected %q, got %q", tc.expected, actual)
		}
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("inner")

	for _, err := range []error{
		&InvalidString{Line: 1, Err: inner},
		&Parse{Err: inner},
		&IO{Err: inner},
	} {
		if !errors.Is(err, inner) {
			t.Fatalf("%v: expected to wrap inner error", err)
		}
	}
}
