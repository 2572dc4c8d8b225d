package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/knight/internal/engine"
	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/literal"
	"github.com/michaelmacinnis/knight/internal/reader/parser"
	"github.com/michaelmacinnis/knight/internal/type/env"
)

// fixture describes one program and what running it should produce.
// Result is the debug representation of the value returned.
type fixture struct {
	Name    string `yaml:"name"`
	Program string `yaml:"program"`
	Input   string `yaml:"input"`
	Checked bool   `yaml:"checked"`
	Result  string `yaml:"result"`
	Output  string `yaml:"output"`
	Error   string `yaml:"error"`
	Message string `yaml:"message"`
	Quit    *int   `yaml:"quit"`
}

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		var fixtures []fixture
		if err := yaml.Unmarshal(b, &fixtures); err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		for _, f := range fixtures {
			f := f
			t.Run(filepath.Base(path)+"/"+f.Name, func(t *testing.T) {
				f.run(t)
			})
		}
	}
}

func (f *fixture) run(t *testing.T) {
	var out strings.Builder

	e := env.New(
		env.Checked(f.Checked),
		env.Input(strings.NewReader(f.Input)),
		env.Output(&out),
		env.Random(func() int64 { return 7 }),
	)

	c, err := parser.String(f.Name, f.Program, e, Table())
	if err != nil {
		t.Fatalf("%q: unexpected parse error: %v", f.Program, err)
	}

	v, err := engine.Run(c, e)

	if out.String() != f.Output {
		t.Fatalf("%q: expected output %q, got %q", f.Program, f.Output, out.String())
	}

	if f.Quit != nil {
		code, ok := failure.IsQuit(err)
		if !ok || code != *f.Quit {
			t.Fatalf("%q: expected quit %d, got %v", f.Program, *f.Quit, err)
		}

		return
	}

	if f.Error != "" {
		if k := kind(err); k != f.Error {
			t.Fatalf("%q: expected %s, got %s (%v)", f.Program, f.Error, k, err)
		}

		if !strings.Contains(err.Error(), f.Message) {
			t.Fatalf("%q: expected %q in %q", f.Program, f.Message, err.Error())
		}

		return
	}

	if err != nil {
		t.Fatalf("%q: unexpected error: %v", f.Program, err)
	}

	if r := literal.String(v); r != f.Result {
		t.Fatalf("%q: expected %s, got %s", f.Program, f.Result, r)
	}
}

func kind(err error) string {
	var (
		d  *failure.DivisionByZero
		i  *failure.InvalidOperand
		io *failure.IO
		o  *failure.Overflow
		p  *failure.Parse
		uc *failure.UndefinedConversion
		ui *failure.UnknownIdentifier
	)

	switch {
	case err == nil:
		return "nothing"
	case errors.As(err, &p):
		return "Parse"
	case errors.As(err, &d):
		return "DivisionByZero"
	case errors.As(err, &i):
		return "InvalidOperand"
	case errors.As(err, &io):
		return "IO"
	case errors.As(err, &o):
		return "Overflow"
	case errors.As(err, &uc):
		return "UndefinedConversion"
	case errors.As(err, &ui):
		return "UnknownIdentifier"
	}

	return "unknown"
}
