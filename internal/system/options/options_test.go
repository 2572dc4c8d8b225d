package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func TestExpr(t *testing.T) {
	o, err := Parse([]string{"-c", "-n", "-e", "+ 1 2"}, "test", docopt.NoHelpHandler)
	if err != nil {
		t.Fatal(err)
	}

	if o.Expr != "+ 1 2" || !o.HasExpr || o.HasFile || !o.Checked || !o.Embedded || o.Interactive {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestEmptyValues(t *testing.T) {
	for _, argv := range [][]string{
		{"-e", ""},
		{"--expr="},
		{"-f", ""},
	} {
		o, err := Parse(argv, "test", docopt.NoHelpHandler)
		if err != nil {
			t.Fatalf("%q: %v", argv, err)
		}

		if o.HasExpr == o.HasFile || o.Expr != "" || o.File != "" || o.Interactive {
			t.Fatalf("%q: unexpected options: %+v", argv, o)
		}
	}
}

func TestNeither(t *testing.T) {
	o, err := Parse([]string{"-s"}, "test", docopt.NoHelpHandler)
	if err != nil {
		t.Fatal(err)
	}

	if o.HasExpr || o.HasFile {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestFile(t *testing.T) {
	o, err := Parse([]string{"-w", "--file=prog.kn", "--debug"}, "test", docopt.NoHelpHandler)
	if err != nil {
		t.Fatal(err)
	}

	if o.File != "prog.kn" || !o.HasFile || !o.Watch || !o.Debug || o.Interactive {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestInvertInteractive(t *testing.T) {
	o, err := Parse([]string{"-i", "-s"}, "test", docopt.NoHelpHandler)
	if err != nil {
		t.Fatal(err)
	}

	if !o.Stdin || !o.Interactive {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestList(t *testing.T) {
	o, err := Parse([]string{"--list"}, "test", docopt.NoHelpHandler)
	if err != nil {
		t.Fatal(err)
	}

	if !o.List {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-h", "-v"} {
		shown := ""

		o, err := Parse([]string{arg}, "knight test", func(_ error, usage string) {
			shown = usage
		})
		if err != nil || o != nil {
			t.Fatalf("%s: expected no options, got %+v, %v", arg, o, err)
		}

		if shown == "" {
			t.Fatalf("%s: expected text to be shown", arg)
		}
	}
}

func TestInvalid(t *testing.T) {
	for _, argv := range [][]string{
		{"-x"},
		{"-e"},
		{"-w", "-e", "1"},
	} {
		if _, err := Parse(argv, "test", docopt.NoHelpHandler); err == nil {
			t.Fatalf("%v: expected an error", argv)
		}
	}
}
