// Released under an MIT license. See LICENSE.

// Package env provides the environment a knight program runs in.
//
// An environment owns the table of interned variables and the capabilities
// builtins use to reach the outside world: an input source, an output sink,
// a shell command runner and a source of random numbers. Environments never
// share variables.
package env

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelmacinnis/knight/internal/system/shell"
	"github.com/michaelmacinnis/knight/internal/type/hash"
	"github.com/michaelmacinnis/knight/internal/type/text"
	"github.com/michaelmacinnis/knight/internal/type/variable"
)

// ErrEmbedded is returned by the shell capability of an embedded environment.
var ErrEmbedded = errors.New("cannot run ` when embedded")

// System runs a shell command and returns its captured output.
type System func(command text.T) (text.T, error)

// T (env) holds the variables and capabilities for one program run.
type T struct {
	checked bool
	id      uuid.UUID
	input   *bufio.Reader
	log     *slog.Logger
	output  io.Writer
	random  func() int64
	system  System
	vars    *hash.T
}

// Option configures an environment created by New.
type Option func(e *T)

// New creates a new environment. Without options the environment reads
// nothing, discards output and refuses to run shell commands.
func New(options ...Option) *T {
	e := &T{
		id:     uuid.New(),
		input:  bufio.NewReader(strings.NewReader("")),
		output: io.Discard,
		random: random,
		system: embedded,
		vars:   hash.New(),
	}

	for _, o := range options {
		o(e)
	}

	if e.log == nil {
		e.log = slog.Default()
	}

	e.log = e.log.With(slog.String("env", e.id.String()))

	return e
}

// Default creates an environment wired to the process's stdin and stdout
// that runs shell commands with sh. Output is buffered; call Flush.
func Default(options ...Option) *T {
	o := []Option{
		Input(os.Stdin),
		Output(bufio.NewWriter(os.Stdout)),
		Shell(shell.Run),
	}

	return New(append(o, options...)...)
}

// Checked enables or disables overflow checks for integer arithmetic.
func Checked(enabled bool) Option {
	return func(e *T) {
		e.checked = enabled
	}
}

// Embedded disables the shell capability.
func Embedded() Option {
	return func(e *T) {
		e.system = embedded
	}
}

// Input sets the source read by PROMPT.
func Input(r io.Reader) Option {
	return func(e *T) {
		e.input = bufio.NewReader(r)
	}
}

// Logger sets the logger used for diagnostics.
func Logger(l *slog.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// Output sets the sink written to by OUTPUT and DUMP.
func Output(w io.Writer) Option {
	return func(e *T) {
		e.output = w
	}
}

// Random sets the source of numbers returned by RANDOM.
func Random(f func() int64) Option {
	return func(e *T) {
		e.random = f
	}
}

// Shell sets the function used to run shell commands.
func Shell(f System) Option {
	return func(e *T) {
		e.system = f
	}
}

// Checked returns true if integer arithmetic should report overflow.
func (e *T) Checked() bool {
	return e.checked
}

// Each calls f for every variable in the environment e, in name order,
// until f returns false.
func (e *T) Each(f func(v *variable.T) bool) {
	e.vars.Each(f)
}

// Flush writes any buffered output.
func (e *T) Flush() error {
	if f, ok := e.output.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// Get returns the variable named k, creating it on first use. Repeated
// calls with the same name return the same variable.
func (e *T) Get(k string) *variable.T {
	return e.vars.Get(k)
}

// ID returns the unique identifier for the environment e.
func (e *T) ID() string {
	return e.id.String()
}

// Log returns the environment's logger.
func (e *T) Log() *slog.Logger {
	return e.log
}

// Random returns the next random number.
func (e *T) Random() int64 {
	return e.random()
}

// ReadLine reads the next line of input without its line terminator.
// It returns false if the input is exhausted.
func (e *T) ReadLine() (text.T, bool, error) {
	line, err := e.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return text.T{}, false, err
	}

	if line == "" && err != nil {
		return text.T{}, false, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	t, err := text.New(line)
	if err != nil {
		return text.T{}, false, err
	}

	return t, true, nil
}

// System runs command using the environment's shell capability.
func (e *T) System(command text.T) (text.T, error) {
	return e.system(command)
}

// Write writes p to the environment's output.
func (e *T) Write(p []byte) (int, error) {
	return e.output.Write(p)
}

func embedded(text.T) (text.T, error) {
	return text.T{}, ErrEmbedded
}

func random() int64 {
	return rand.Int63n(0x8000) //nolint:gosec
}
