// Released under an MIT license. See LICENSE.

// Package parser provides a parser for the knight language.
//
// The parser is a single-pass, recursive-descent parser. Each call to Parse
// consumes exactly one expression and returns it as an unevaluated tree.
// Functions have fixed arities, so no delimiters are needed: after a
// function's name the parser reads exactly as many expressions as the
// function takes.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/knight/internal/failure"
	"github.com/michaelmacinnis/knight/internal/interface/cell"
	"github.com/michaelmacinnis/knight/internal/reader/scanner"
	"github.com/michaelmacinnis/knight/internal/type/boolean"
	"github.com/michaelmacinnis/knight/internal/type/call"
	"github.com/michaelmacinnis/knight/internal/type/env"
	"github.com/michaelmacinnis/knight/internal/type/function"
	"github.com/michaelmacinnis/knight/internal/type/null"
	"github.com/michaelmacinnis/knight/internal/type/num"
	"github.com/michaelmacinnis/knight/internal/type/str"
	"github.com/michaelmacinnis/knight/internal/type/text"
)

// T (parser) parses expressions from a scanner.
type T struct {
	e   *env.T
	fns *function.Table
	s   *scanner.T
}

// New creates a new parser. Variables are interned in e and function
// names are resolved using fns.
func New(s *scanner.T, e *env.T, fns *function.Table) *T {
	return &T{e: e, fns: fns, s: s}
}

// Parse parses the next expression from s.
func Parse(s *scanner.T, e *env.T, fns *function.Table) (cell.T, error) {
	return New(s, e, fns).Parse()
}

// String parses the first expression in src.
func String(label, src string, e *env.T, fns *function.Table) (cell.T, error) {
	return Parse(scanner.String(label, src), e, fns)
}

// Parse returns the next expression. It returns failure.ErrNothingToParse
// if there is nothing but whitespace and comments left.
func (p *T) Parse() (cell.T, error) {
	for {
		c, ok := p.s.Next()
		if !ok {
			return nil, p.end()
		}

		switch {
		case separator(c):
			continue
		case c == '#':
			p.comment()
			continue
		case digit(c):
			return p.number(c), nil
		case lower(c) || c == '_':
			return p.variable(c), nil
		case c == '"' || c == '\'':
			return p.quoted(c)
		case c == 'T' || c == 'F':
			p.keyword()
			return boolean.Bool(c == 'T'), nil
		case c == 'N':
			p.keyword()
			return null.Null, nil
		}

		fn, ok := p.fns.Lookup(c)
		if !ok {
			return nil, &failure.UnknownTokenStart{Char: c, Line: p.s.Line()}
		}

		return p.call(fn)
	}
}

func (p *T) call(fn *function.T) (cell.T, error) {
	line := p.s.Line()

	if upper(fn.Char()) {
		p.keyword()
	}

	args := make([]cell.T, fn.Arity())
	for i := range args {
		arg, err := p.Parse()
		if errors.Is(err, failure.ErrNothingToParse) {
			return nil, &failure.MissingFunctionArgument{
				Name:  fn.Char(),
				Index: i,
				Line:  line,
			}
		} else if err != nil {
			return nil, err
		}

		args[i] = arg
	}

	return call.New(fn, args...), nil
}

func (p *T) comment() {
	for {
		c, ok := p.s.Next()
		if !ok || c == '\n' {
			return
		}
	}
}

func (p *T) end() error {
	if err := p.s.Err(); err != nil {
		l := p.s.Loc()
		return fmt.Errorf("%s: %w", l.String(), err)
	}

	return failure.ErrNothingToParse
}

// Keywords may be written as words. Everything after the first
// character is ignored.
func (p *T) keyword() {
	p.while(func(c byte) bool {
		return upper(c) || c == '_'
	})
}

func (p *T) number(first byte) cell.T {
	v := int64(first - '0')

	p.while(func(c byte) bool {
		if !digit(c) {
			return false
		}

		v = v*10 + int64(c-'0')

		return true
	})

	return num.Int(v)
}

func (p *T) quoted(q byte) (cell.T, error) {
	line := p.s.Line()

	var b strings.Builder

	for {
		c, ok := p.s.Next()
		if !ok {
			if err := p.s.Err(); err != nil {
				return nil, p.end()
			}

			return nil, &failure.UnterminatedQuote{Line: line}
		}

		if c == q {
			break
		}

		b.WriteByte(c)
	}

	t, err := text.New(b.String())
	if err != nil {
		return nil, &failure.InvalidString{Line: line, Err: err}
	}

	return str.New(t), nil
}

func (p *T) variable(first byte) cell.T {
	var b strings.Builder

	b.WriteByte(first)

	p.while(func(c byte) bool {
		if !lower(c) && !digit(c) && c != '_' {
			return false
		}

		b.WriteByte(c)

		return true
	})

	return p.e.Get(b.String())
}

// while consumes characters as long as f returns true.
func (p *T) while(f func(c byte) bool) {
	for {
		c, ok := p.s.Next()
		if !ok {
			return
		}

		if !f(c) {
			p.s.Unread()
			return
		}
	}
}

func digit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func separator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '[', ']', '{', '}', ':':
		return true
	}

	return false
}

func upper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
