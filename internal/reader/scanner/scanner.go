// Released under an MIT license. See LICENSE.

// Package scanner provides the character stream consumed by knight's parser.
//
// The parser only ever needs to look one character ahead, so the scanner
// supports reading a character and putting back the last character read.
package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/knight/internal/type/loc"
)

const eof = -1

// T holds the state of the scanner.
type T struct {
	err    error
	last   int // Last character read or eof.
	r      io.ByteScanner
	source loc.T
}

// New creates a new T that reads from r. Label can be a file name or other identifier.
func New(label string, r io.Reader) *T {
	s, ok := r.(io.ByteScanner)
	if !ok {
		s = bufio.NewReader(r)
	}

	return &T{
		last: eof,
		r:    s,
		source: loc.T{
			Line: 1,
			Name: label,
		},
	}
}

// String creates a new T that reads from the string src.
func String(label, src string) *T {
	return New(label, strings.NewReader(src))
}

// Err returns the first read error other than io.EOF.
func (s *T) Err() error {
	return s.err
}

// Line returns the current line number.
func (s *T) Line() int {
	return s.source.Line
}

// Loc returns the current location.
func (s *T) Loc() loc.T {
	return s.source
}

// Next returns the next character. It returns false at the end of input.
func (s *T) Next() (byte, bool) {
	if s.err != nil {
		return 0, false
	}

	c, err := s.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}

		s.last = eof

		return 0, false
	}

	if c == '\n' {
		s.source.Line++
	}

	s.last = int(c)

	return c, true
}

// Peek returns the next character without consuming it.
func (s *T) Peek() (byte, bool) {
	c, ok := s.Next()
	if ok {
		s.Unread()
	}

	return c, ok
}

// Unread puts back the last character read. Only one character can be put back.
func (s *T) Unread() {
	if s.last == eof {
		return
	}

	if s.last == '\n' {
		s.source.Line--
	}

	s.last = eof

	_ = s.r.UnreadByte()
}
