// Released under an MIT license. See LICENSE.

// Package text provides knight's validated, immutable character sequence.
//
// Legal characters are tab, newline, carriage return and the printable
// ASCII characters (0x20 to 0x7E). A T can only be created through New,
// Must or the operations below, all of which preserve that invariant.
package text

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// T (text) is an immutable sequence of legal characters.
// The zero value is the empty text.
type T struct {
	s string
}

// InvalidCharacter is returned when a string contains an illegal character.
type InvalidCharacter struct {
	Char  byte
	Index int
}

func (e *InvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Char, e.Index)
}

// New validates s and returns it as a T.
func New(s string) (T, error) {
	for i := 0; i < len(s); i++ {
		if !Legal(s[i]) {
			return T{}, &InvalidCharacter{Char: s[i], Index: i}
		}
	}

	return T{s}, nil
}

// Must is like New but panics if s contains an illegal character.
func Must(s string) T {
	t, err := New(s)
	if err != nil {
		panic(err.Error())
	}

	return t
}

// Int returns the decimal representation of i.
func Int(i int64) T {
	return T{strconv.FormatInt(i, 10)}
}

// Legal returns true if c may appear in a T.
func Legal(c byte) bool {
	switch c {
	case '\t', '\n', '\r':
		return true
	}

	return c >= ' ' && c <= '~'
}

// Compare returns -1, 0 or 1 as t sorts before, with or after u.
func (t T) Compare(u T) int {
	return strings.Compare(t.s, u.s)
}

// Concat returns t followed by u.
func (t T) Concat(u T) T {
	return T{t.s + u.s}
}

// Empty returns true if t has no characters.
func (t T) Empty() bool {
	return t.s == ""
}

// Len returns the number of characters in t.
func (t T) Len() int {
	return len(t.s)
}

// Repeat returns t repeated n times. Counts of zero or less yield the empty
// text. The boolean is false if the result would be too long to represent.
func (t T) Repeat(n int64) (T, bool) {
	if n <= 0 || t.s == "" {
		return T{}, true
	}

	if n > int64(math.MaxInt/len(t.s)) {
		return T{}, false
	}

	return T{strings.Repeat(t.s, int(n))}, true
}

// Replace returns t with the range [start, start+length) replaced by r.
// Out of range offsets and lengths are clamped.
func (t T) Replace(start, length int64, r T) T {
	i, j := t.bounds(start, length)

	return T{t.s[:i] + r.s + t.s[j:]}
}

// Slice returns at most length characters of t starting at start.
// Out of range offsets and lengths are clamped.
func (t T) Slice(start, length int64) T {
	i, j := t.bounds(start, length)

	return T{t.s[i:j]}
}

// String returns the characters of t.
func (t T) String() string {
	return t.s
}

// TrimSuffix returns t without suffix, and whether suffix was present.
func (t T) TrimSuffix(suffix string) (T, bool) {
	if !strings.HasSuffix(t.s, suffix) {
		return t, false
	}

	return T{t.s[:len(t.s)-len(suffix)]}, true
}

func (t T) bounds(start, length int64) (int, int) {
	n := int64(len(t.s))

	start = clamp(start, n)
	length = clamp(length, n-start)

	return int(start), int(start + length)
}

func clamp(v, limit int64) int64 {
	if v < 0 {
		return 0
	}

	if v > limit {
		return limit
	}

	return v
}
