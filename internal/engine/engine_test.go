package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/type/boolean"
	"github.com/michaelmacinnis/knight/internal/type/call"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/function"
	"github.com/michaelmacinnis/knight/internal/type/null"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/str"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

type opaque struct{}

func (opaque) Equal(c cell.T) bool {
	_, ok := c.(opaque)
	return ok
}

func (opaque) Name() string {
	return "Opaque"
}

func constant(c cell.T) *call.T {
	fn := function.NewTable().Register('K', 0, "constant", func([]cell.T, *env.T) (cell.T, error) {
		return c, nil
	})

	return call.New(fn)
}

func TestRunLiterals(t *testing.T) {
	e := env.New()

	for _, c := range []cell.T{
		null.Null, boolean.True, num.Int(3), str.New(text.Must("s")),
	} {
		v, err := Run(c, e)
		if err != nil {
			t.Fatal(err)
		}

		if !v.Equal(c) {
			t.Fatalf("expected %v, got %v", c, v)
		}
	}
}

func TestRunUnassigned(t *testing.T) {
	e := env.New()

	_, err := Run(e.Get("missing"), e)

	var u *failure.UnknownIdentifier
	if !errors.As(err, &u) || u.Name != "missing" {
		t.Fatalf("expected unknown identifier, got %v", err)
	}
}

func TestRunCall(t *testing.T) {
	e := env.New()

	v, err := Run(constant(num.Int(9)), e)
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(num.Int(9)) {
		t.Fatalf("expected 9, got %v", v)
	}
}

func TestValueRunsUntilLiteral(t *testing.T) {
	e := env.New()

	inner := constant(num.Int(4))
	e.Get("b").Set(constant(inner))

	n, err := Int(e.Get("b"), e)
	if err != nil {
		t.Fatal(err)
	}

	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}

	// Run evaluates only once.
	v, err := Run(e.Get("b"), e)
	if err != nil {
		t.Fatal(err)
	}

	if !call.Is(v) {
		t.Fatalf("expected a call, got %s", v.Name())
	}
}

func TestValueFollowsLongChain(t *testing.T) {
	e := env.New()

	const depth = 10000

	e.Get("v0").Set(num.Int(depth))

	for i := 1; i <= depth; i++ {
		e.Get(fmt.Sprintf("v%d", i)).Set(e.Get(fmt.Sprintf("v%d", i-1)))
	}

	n, err := Int(constant(e.Get(fmt.Sprintf("v%d", depth))), e)
	if err != nil {
		t.Fatal(err)
	}

	if n != depth {
		t.Fatalf("expected %d, got %d", depth, n)
	}
}

func TestConversions(t *testing.T) {
	e := env.New()

	for _, tc := range []struct {
		c cell.T
		b bool
		i int64
		s string
	}{
		{null.Null, false, 0, "null"},
		{boolean.True, true, 1, "true"},
		{boolean.False, false, 0, "false"},
		{num.Int(0), false, 0, "0"},
		{num.Int(-12), true, -12, "-12"},
		{str.New(text.Must("")), false, 0, ""},
		{str.New(text.Must("  12abc")), true, 12, "  12abc"},
		{str.New(text.Must("0")), true, 0, "0"},
	} {
		b, err := Bool(tc.c, e)
		if err != nil || b != tc.b {
			t.Fatalf("Bool(%s): expected %v, got %v (%v)", tc.s, tc.b, b, err)
		}

		i, err := Int(tc.c, e)
		if err != nil || i != tc.i {
			t.Fatalf("Int(%s): expected %d, got %d (%v)", tc.s, tc.i, i, err)
		}

		s, err := Text(tc.c, e)
		if err != nil || s.String() != tc.s {
			t.Fatalf("Text(%s): expected %q, got %q (%v)", tc.s, tc.s, s.String(), err)
		}
	}
}

func TestUndefinedConversion(t *testing.T) {
	e := env.New()

	_, err := Int(opaque{}, e)

	var u *failure.UndefinedConversion
	if !errors.As(err, &u) || u.Target != "Number" || u.Source != "Opaque" {
		t.Fatalf("expected undefined conversion, got %v", err)
	}

	if _, err := Bool(opaque{}, e); !errors.As(err, &u) || u.Target != "Boolean" {
		t.Fatalf("expected undefined conversion, got %v", err)
	}

	if _, err := Text(opaque{}, e); !errors.As(err, &u) || u.Target != "String" {
		t.Fatalf("expected undefined conversion, got %v", err)
	}
}
