package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func check(t *testing.T, argv []string, stdin string, code int, output string) {
	t.Helper()

	var b strings.Builder

	if actual := run(argv, strings.NewReader(stdin), &b); actual != code {
		t.Fatalf("%q: expected status %d, got %d", argv, code, actual)
	}

	if b.String() != output {
		t.Fatalf("%q: expected output %q, got %q", argv, output, b.String())
	}
}

func TestExpr(t *testing.T) {
	check(t, []string{"-e", `O "hi"`}, "", 0, "hi\n")
	check(t, []string{"-e", `; O "a" Q 3`}, "", 3, "a\n")
	check(t, []string{"-e", "+ 1"}, "", 1, "")
	check(t, []string{"-e", "/ 1 0"}, "", 1, "")
	check(t, []string{"-e", "O P"}, "echo\n", 0, "echo\n")
}

func TestEmptyExpr(t *testing.T) {
	// Stdin is not read for an empty expression.
	check(t, []string{"-e", ""}, "O 1", 1, "")
	check(t, []string{"-e", "   # only a comment"}, "O 1", 1, "")
	check(t, []string{"-f", ""}, "O 1", 1, "")
}

func TestChecked(t *testing.T) {
	check(t, []string{"-e", "O + 9223372036854775807 1"}, "", 0, "-9223372036854775808\n")
	check(t, []string{"-c", "-e", "O + 9223372036854775807 1"}, "", 1, "")
}

func TestEmbedded(t *testing.T) {
	check(t, []string{"-n", "-e", "` \"true\""}, "", 1, "")
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fizzbuzz.kn")

	src := `
# Print the numbers from 1 to 15, replacing multiples of three and five.
; = n 0
: WHILE < n 15
  ; = n + n 1
  : OUTPUT
    : IF ! % n 15 "FizzBuzz"
    : IF ! % n 5 "Buzz"
    : IF ! % n 3 "Fizz"
    : n
`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	check(t, []string{"-f", path}, "", 0, strings.Join([]string{
		"1", "2", "Fizz", "4", "Buzz", "Fizz", "7", "8", "Fizz", "Buzz",
		"11", "Fizz", "13", "14", "FizzBuzz", "",
	}, "\n"))

	check(t, []string{"-f", filepath.Join(t.TempDir(), "missing.kn")}, "", 1, "")
}

func TestStdin(t *testing.T) {
	check(t, []string{"-s"}, `; = x 6 O * x 7`, 0, "42\n")
}

func TestList(t *testing.T) {
	var b strings.Builder

	if code := run([]string{"-l"}, strings.NewReader(""), &b); code != 0 {
		t.Fatalf("expected status 0, got %d", code)
	}

	if !strings.Contains(b.String(), "substitute") {
		t.Fatalf("unexpected listing: %q", b.String())
	}
}
