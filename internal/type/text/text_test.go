package text

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	for _, s := range []string{"", "abc", "tab\there", "line\r\n", " ~"} {
		if _, err := New(s); err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
	}

	for _, tc := range []struct {
		s     string
		index int
	}{
		{"\x00", 0},
		{"ab\x7f", 2},
		{"caf\xc3\xa9", 3},
	} {
		_, err := New(tc.s)

		var ic *InvalidCharacter
		if !errors.As(err, &ic) || ic.Index != tc.index {
			t.Fatalf("%q: expected invalid character at %d, got %v", tc.s, tc.index, err)
		}
	}
}

func TestRepeat(t *testing.T) {
	for _, tc := range []struct {
		n        int64
		expected string
	}{
		{-1, ""}, {0, ""}, {1, "ab"}, {3, "ababab"},
	} {
		r, ok := Must("ab").Repeat(tc.n)
		if !ok {
			t.Fatalf("Repeat(%d): unexpected overflow", tc.n)
		}

		if actual := r.String(); actual != tc.expected {
			t.Fatalf("Repeat(%d): expected %q, got %q", tc.n, tc.expected, actual)
		}
	}

	if _, ok := Must("").Repeat(math.MaxInt64); !ok {
		t.Fatalf("Repeat of empty text should never overflow")
	}

	for _, n := range []int64{math.MaxInt64, math.MaxInt64/2 + 1} {
		if _, ok := Must("ab").Repeat(n); ok {
			t.Fatalf("Repeat(%d): expected overflow", n)
		}
	}
}

func TestReplace(t *testing.T) {
	for _, tc := range []struct {
		start, length int64
		expected      string
	}{
		{1, 1, "aXYc"},
		{0, 0, "XYabc"},
		{3, 0, "abcXY"},
		{1, 10, "aXY"},
		{10, 1, "abcXY"},
		{-5, 1, "XYbc"},
		{1, -5, "aXYbc"},
	} {
		actual := Must("abc").Replace(tc.start, tc.length, Must("XY")).String()
		if actual != tc.expected {
			t.Fatalf(
				"Replace(%d, %d): expected %q, got %q",
				tc.start, tc.length, tc.expected, actual,
			)
		}
	}
}

func TestSlice(t *testing.T) {
	for _, tc := range []struct {
		start, length int64
		expected      string
	}{
		{0, 3, "abc"},
		{1, 10, "bc"},
		{1, 1, "b"},
		{3, 1, ""},
		{10, 10, ""},
		{-1, 2, "ab"},
		{1, -1, ""},
	} {
		actual := Must("abc").Slice(tc.start, tc.length).String()
		if actual != tc.expected {
			t.Fatalf(
				"Slice(%d, %d): expected %q, got %q",
				tc.start, tc.length, tc.expected, actual,
			)
		}
	}
}

func TestTrimSuffix(t *testing.T) {
	s, ok := Must(`done\`).TrimSuffix(`\`)
	if !ok || s.String() != "done" {
		t.Fatalf("expected done, got %q (%v)", s.String(), ok)
	}

	s, ok = Must("done").TrimSuffix(`\`)
	if ok || s.String() != "done" {
		t.Fatalf("expected done unchanged, got %q (%v)", s.String(), ok)
	}
}
